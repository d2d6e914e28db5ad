package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/lumin"
)

var (
	treeCaseSensitive bool
	treeNoIgnore      bool
	treeMaxDepth      int
)

var treeCmd = &cobra.Command{
	Use:   "tree <directory>",
	Short: "Display directory structure as a tree",
	Long:  "Map the directory structure under a directory and output it as JSON, one group of entries per directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeCaseSensitive, "case-sensitive", false, "Case sensitive matching")
	treeCmd.Flags().BoolVar(&treeNoIgnore, "no-ignore", false, "Ignore gitignore files")
	treeCmd.Flags().IntVar(&treeMaxDepth, "max-depth", 20, "Maximum directory traversal depth (0 for unlimited)")
}

func runTree(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	caseSensitive := treeCaseSensitive
	if !flags.Changed("case-sensitive") && cfg.CaseSensitive != nil {
		caseSensitive = *cfg.CaseSensitive
	}
	respect := !treeNoIgnore
	if !flags.Changed("no-ignore") && cfg.RespectGitignore != nil {
		respect = *cfg.RespectGitignore
	}
	maxDepth := treeMaxDepth
	if !flags.Changed("max-depth") && cfg.MaxDepth != nil {
		maxDepth = *cfg.MaxDepth
	}

	trees, err := lumin.Tree(args[0], lumin.TreeOptions{
		CaseSensitive:    caseSensitive,
		RespectGitignore: respect,
		MaxDepth:         maxDepth,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(trees) == 0 {
		fmt.Fprintln(out, "No directories found.")
		return nil
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(trees)
}
