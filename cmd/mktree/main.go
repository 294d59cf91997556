// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command mktree creates directory trees from Emmet-like expressions.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mdhender/mktree"
	"github.com/mdhender/mktree/fsops"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "mktree",
		Short: "create directory trees from compact expressions",
		Long:  `Parse an Emmet-like expression into a tree of directories and files, preview it, or create it on disk`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("mktree: version %q\n", mktree.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdTree())
	cmdRoot.AddCommand(cmdApply())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseExpression wraps mktree.Parse with the diagnostic contract:
// on failure, print the full expression with a caret under the
// offending character and report the error exactly once.
func parseExpression(cmd *cobra.Command, input string) ([]*mktree.Node, error) {
	forest, err := mktree.Parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, mktree.Annotate(input, err))
		cmd.SilenceErrors = true
	}
	return forest, err
}

func cmdTree() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "tree <expression>",
		Short:        "parse an expression and print the tree it describes",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := parseExpression(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Print(mktree.Render(forest))
			return nil
		},
	}
	return cmd
}

func cmdApply() *cobra.Command {
	destDir := "."
	dryRun := false
	overwrite := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&destDir, "dir", "d", destDir, "directory to create the tree in")
		cmd.Flags().BoolVar(&dryRun, "dry-run", dryRun, "show what would be created without creating it")
		cmd.Flags().BoolVar(&overwrite, "overwrite", overwrite, "overwrite existing files")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "apply <expression>",
		Short:        "create the directories and files an expression describes",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			if quiet {
				verbose = false
			}

			forest, err := parseExpression(cmd, args[0])
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			m, err := fsops.New(fsops.WithLogger(logger))
			if err != nil {
				return err
			}

			if dryRun {
				targets, err := m.Targets(destDir, forest)
				if err != nil {
					return err
				}
				for _, target := range targets {
					fmt.Println(target)
				}
				return nil
			}

			if err := m.Apply(destDir, forest, overwrite); err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("mktree: created under %s\n", destDir)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(mktree.Version().String())
				return nil
			}
			fmt.Println(mktree.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
