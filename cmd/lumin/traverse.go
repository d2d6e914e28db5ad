package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/lumin"
)

var (
	traverseCaseSensitive bool
	traverseNoIgnore      bool
	traverseIncludeBinary bool
	traverseMaxDepth      int
)

var traverseCmd = &cobra.Command{
	Use:   "traverse <directory> [pattern]",
	Short: "Traverse directories and list files",
	Long:  "List files under a directory with their content types, optionally filtered by a glob or substring pattern",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTraverse,
}

func init() {
	traverseCmd.Flags().BoolVar(&traverseCaseSensitive, "case-sensitive", false, "Case sensitive matching")
	traverseCmd.Flags().BoolVar(&traverseNoIgnore, "no-ignore", false, "Ignore gitignore files")
	traverseCmd.Flags().BoolVar(&traverseIncludeBinary, "include-binary", false, "Include binary files")
	traverseCmd.Flags().IntVar(&traverseMaxDepth, "max-depth", 20, "Maximum directory traversal depth (0 for unlimited)")
}

func runTraverse(cmd *cobra.Command, args []string) error {
	dir := args[0]
	pattern := ""
	if len(args) > 1 {
		pattern = args[1]
	}
	flags := cmd.Flags()

	caseSensitive := traverseCaseSensitive
	if !flags.Changed("case-sensitive") && cfg.CaseSensitive != nil {
		caseSensitive = *cfg.CaseSensitive
	}
	respect := !traverseNoIgnore
	if !flags.Changed("no-ignore") && cfg.RespectGitignore != nil {
		respect = *cfg.RespectGitignore
	}
	maxDepth := traverseMaxDepth
	if !flags.Changed("max-depth") && cfg.MaxDepth != nil {
		maxDepth = *cfg.MaxDepth
	}

	files, err := lumin.Traverse(dir, lumin.TraverseOptions{
		CaseSensitive:    caseSensitive,
		RespectGitignore: respect,
		OnlyTextFiles:    !traverseIncludeBinary,
		Pattern:          pattern,
		MaxDepth:         maxDepth,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "No files found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d files:\n", len(files))
	for _, f := range files {
		hiddenMarker := " "
		if f.IsHidden() {
			hiddenMarker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %s\n", hiddenMarker, f.FileType, f.FilePath)
	}

	return nil
}
