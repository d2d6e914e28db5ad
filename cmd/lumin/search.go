package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tacogips/lumin"
	"golang.org/x/term"
)

var (
	searchCaseSensitive bool
	searchNoIgnore      bool
	searchMaxDepth      int
	searchOmitContext   int
	searchBefore        int
	searchAfter         int
	searchIncludeGlobs  []string
	searchExcludeGlobs  []string
	searchSkip          int
	searchTake          int
	searchColor         string
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern> <directory>",
	Short: "Search for patterns in files",
	Long:  "Search text files under a directory for a regex pattern",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false, "Case sensitive search")
	searchCmd.Flags().BoolVar(&searchNoIgnore, "no-ignore", false, "Ignore gitignore files")
	searchCmd.Flags().IntVar(&searchMaxDepth, "max-depth", 20, "Maximum directory traversal depth (0 for unlimited)")
	searchCmd.Flags().IntVar(&searchOmitContext, "omit-context", -1, "Limit context around matches to this many characters per side (-1 for no limit)")
	searchCmd.Flags().IntVarP(&searchBefore, "before-context", "B", 0, "Number of lines to show before each match")
	searchCmd.Flags().IntVarP(&searchAfter, "after-context", "A", 0, "Number of lines to show after each match")
	searchCmd.Flags().StringArrayVar(&searchIncludeGlobs, "include-glob", nil, "Only search files matching this glob, relative to the directory (repeatable)")
	searchCmd.Flags().StringArrayVar(&searchExcludeGlobs, "exclude-glob", nil, "Skip files matching this glob, relative to the directory (repeatable)")
	searchCmd.Flags().IntVar(&searchSkip, "skip", -1, "Skip this many result lines (-1 to disable)")
	searchCmd.Flags().IntVar(&searchTake, "take", -1, "Return at most this many result lines (-1 to disable)")
	searchCmd.Flags().StringVar(&searchColor, "color", "auto", "Color output: auto, always, never")
}

func runSearch(cmd *cobra.Command, args []string) error {
	pattern, dir := args[0], args[1]
	flags := cmd.Flags()

	caseSensitive := searchCaseSensitive
	if !flags.Changed("case-sensitive") && cfg.CaseSensitive != nil {
		caseSensitive = *cfg.CaseSensitive
	}
	respect := !searchNoIgnore
	if !flags.Changed("no-ignore") && cfg.RespectGitignore != nil {
		respect = *cfg.RespectGitignore
	}
	maxDepth := searchMaxDepth
	if !flags.Changed("max-depth") && cfg.MaxDepth != nil {
		maxDepth = *cfg.MaxDepth
	}
	before := searchBefore
	if !flags.Changed("before-context") && cfg.BeforeContext != nil {
		before = *cfg.BeforeContext
	}
	after := searchAfter
	if !flags.Changed("after-context") && cfg.AfterContext != nil {
		after = *cfg.AfterContext
	}

	var omitChars *int
	switch {
	case searchOmitContext >= 0:
		omitChars = &searchOmitContext
	case cfg.OmitContext != nil:
		omitChars = cfg.OmitContext
	}

	var skip, take *int
	if searchSkip >= 0 {
		skip = &searchSkip
	}
	if searchTake >= 0 {
		take = &searchTake
	}

	var includeGlobs, excludeGlobs []string
	if len(searchIncludeGlobs) > 0 {
		includeGlobs = searchIncludeGlobs
	}
	if len(searchExcludeGlobs) > 0 {
		excludeGlobs = searchExcludeGlobs
	}

	result, err := lumin.Search(pattern, dir, lumin.SearchOptions{
		CaseSensitive:    caseSensitive,
		RespectGitignore: respect,
		IncludeGlobs:     includeGlobs,
		ExcludeGlobs:     excludeGlobs,
		BeforeContext:    before,
		AfterContext:     after,
		OmitChars:        omitChars,
		Skip:             skip,
		Take:             take,
		MaxDepth:         maxDepth,
	})
	if err != nil {
		return err
	}

	return outputSearchResults(cmd, result)
}

// styles holds color formatters for search output.
type styles struct {
	path    *color.Color
	lineNum *color.Color
	context *color.Color
	summary *color.Color
}

// newStyles creates color formatters for search output.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		path:    color.New(color.FgMagenta),
		lineNum: color.New(color.FgGreen),
		context: color.New(color.Faint),
		summary: color.New(color.Bold),
	}

	if !enabled {
		s.path.DisableColor()
		s.lineNum.DisableColor()
		s.context.DisableColor()
		s.summary.DisableColor()
	}

	return s
}

// colorEnabled resolves the --color mode. Anything other than "always"
// or "never" behaves as "auto": color only on a terminal with NO_COLOR
// unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func outputSearchResults(cmd *cobra.Command, result *lumin.SearchResult) error {
	out := cmd.OutOrStdout()

	if len(result.Lines) == 0 {
		fmt.Fprintln(out, "No matches found.")
		return nil
	}

	mode := searchColor
	if !cmd.Flags().Changed("color") && cfg.Color != nil {
		mode = *cfg.Color
	}
	color.NoColor = !colorEnabled(mode)
	s := newStyles(!color.NoColor)

	// Count actual matches, not context lines.
	matchCount := 0
	for _, line := range result.Lines {
		if !line.IsContext {
			matchCount++
		}
	}
	fmt.Fprintln(out, s.summary.Sprintf("Found %d matches:", matchCount))

	var lastFile string
	var lastLine uint64
	for i, line := range result.Lines {
		// Separate discontinuous blocks.
		if i > 0 && (line.FilePath != lastFile || line.LineNumber > lastLine+1) {
			fmt.Fprintln(out, "--")
		}
		lastFile = line.FilePath
		lastLine = line.LineNumber

		content := strings.TrimSpace(line.Content)
		if line.IsContext {
			fmt.Fprintf(out, "%s:%s- %s\n",
				s.path.Sprint(line.FilePath), s.lineNum.Sprint(line.LineNumber), s.context.Sprint(content))
		} else {
			fmt.Fprintf(out, "%s:%s: %s\n",
				s.path.Sprint(line.FilePath), s.lineNum.Sprint(line.LineNumber), content)
		}
	}

	return nil
}
