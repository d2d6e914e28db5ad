package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/lumin"
)

var (
	viewMaxSize  int
	viewLineFrom int
	viewLineTo   int
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "View file contents",
	Long:  "Display a text file as numbered lines, or a description of a binary or image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().IntVar(&viewMaxSize, "max-size", -1, "Maximum file size in bytes (-1 for no limit)")
	viewCmd.Flags().IntVar(&viewLineFrom, "line-from", 0, "Start viewing from this line number (1-based, inclusive)")
	viewCmd.Flags().IntVar(&viewLineTo, "line-to", 0, "End viewing at this line number (1-based, inclusive)")
}

func runView(cmd *cobra.Command, args []string) error {
	var opts lumin.ViewOptions
	if viewMaxSize >= 0 {
		opts.MaxSize = &viewMaxSize
	}
	if viewLineFrom > 0 {
		opts.LineFrom = &viewLineFrom
	}
	if viewLineTo > 0 {
		opts.LineTo = &viewLineTo
	}

	fv, err := lumin.View(args[0], opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch c := fv.Contents.(type) {
	case *lumin.TextContents:
		for _, lc := range c.Content.LineContents {
			fmt.Fprintf(out, "%s:%d:%s\n", fv.FilePath, lc.LineNumber, lc.Line)
		}
	case *lumin.BinaryContents:
		fmt.Fprintf(out, "%s: %s\n", fv.FilePath, c.Message)
	case *lumin.ImageContents:
		fmt.Fprintf(out, "%s: %s\n", fv.FilePath, c.Message)
	}

	return nil
}
