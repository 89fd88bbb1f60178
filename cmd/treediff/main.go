package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/spf13/cobra"

	"github.com/boostgo/treediff"
)

var (
	excludeFrom string
	force       bool
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "treediff",
	Short:   "Compare two directory trees and act on the differences.",
	Version: version,
	Long: `treediff recursively compares two directory trees and reports every path
present only on one side or present on both sides with differing contents.
The copy subcommand copies new and changed files into an output directory.`,
	SilenceUsage: true,
}

var diffCmd = &cobra.Command{
	Use:   "diff <dir1> <dir2>",
	Short: "Print every path unique to one tree or differing between both",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := compareOptions()
		if err != nil {
			return err
		}

		result, err := treediff.Diff(args[0], args[1], options...)
		if err != nil {
			return err
		}

		// Print through the reference handlers in sorted order so output
		// is stable across runs.
		out := cmd.OutOrStdout()
		handlers := treediff.PrintHandlers(out)
		for _, path := range result.OnlyInFirst.Paths() {
			if err := handlers.OnlyInFirst(args[0], path); err != nil {
				return err
			}
		}
		for _, path := range result.OnlyInSecond.Paths() {
			if err := handlers.OnlyInSecond(args[1], path); err != nil {
				return err
			}
		}
		for _, path := range result.Differs.Paths() {
			if err := handlers.Differs(args[0], args[1], path); err != nil {
				return err
			}
		}

		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <old> <new> <out>",
	Short: "Copy files that are new or changed in <new> relative to <old> into <out>",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := compareOptions()
		if err != nil {
			return err
		}

		copyOptions := []treediff.CopyOption{
			treediff.WithCompareOptions(options...),
		}
		if force {
			copyOptions = append(copyOptions, treediff.WithNoTimeCheck())
		}

		stats, err := treediff.CopyDifferences(args[0], args[1], args[2], copyOptions...)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "copied %d files (%s)\n", stats.Files, humanize.Bytes(uint64(stats.Bytes)))
		return nil
	},
}

// compareOptions builds the shared comparison options from global flags.
func compareOptions() ([]treediff.Option, error) {
	options := []treediff.Option{treediff.WithLogger(log.Log)}

	if excludeFrom != "" {
		matcher, err := gitignore.NewGitIgnore(excludeFrom)
		if err != nil {
			return nil, err
		}
		options = append(options, treediff.WithFilter(func(path string, info os.FileInfo) bool {
			return !matcher.Match(path, info.IsDir())
		}))
	}

	return options, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&excludeFrom, "exclude-from", "", "gitignore-style file listing paths to skip")
	copyCmd.Flags().BoolVar(&force, "force", false, "Copy even when <new> is older than <old>")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(copyCmd)
}

func main() {
	initLogger()

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("treediff failed")
		os.Exit(1)
	}
}
