package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	groovylex "go.groovylex.dev/pkg"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>...",
	Short: "Lex one or more Groovy/Nextflow source files and print their terminal stream",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := tokenizeWriter()

		var mu sync.Mutex
		g := errgroup.Group{}
		for _, path := range args {
			path := path
			g.Go(func() error {
				terms, err := tokenizeFile(path)
				if err != nil {
					log.WithField("file", path).Error(err)
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				printTerminals(out, path, terms)
				return nil
			})
		}

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

// tokenizeWriter returns stdout wrapped for ANSI color support on Windows
// consoles, bypassed entirely when --no-color is set or stdout isn't a
// terminal.
func tokenizeWriter() io.Writer {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return os.Stdout
	}
	return colorable.NewColorableStdout()
}

func tokenizeFile(path string) ([]groovylex.Terminal, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	l := groovylex.NewLexer(path, string(src))
	a := groovylex.NewAdapter(l)
	return a.Run()
}

// terminalColor picks an ANSI color code per terminal kind, the same way a
// syntax highlighter buckets lexical categories into a handful of display
// colors rather than one per terminal name. Keyword and operator terminal
// names are both rendered as their uppercase Groovy spelling (e.g. "IF",
// "EQUAL"), so they share a bucket here rather than needing a name-by-name
// table of their own.
func terminalColor(name string) string {
	switch name {
	case groovylex.TermIdent:
		return "36" // cyan
	case groovylex.TermIntegerLiteral, groovylex.TermFloatingPointLiteral, groovylex.TermNumber:
		return "33" // yellow
	case groovylex.TermStringLiteral, groovylex.TermStringLiteralPart,
		groovylex.TermGStringBegin, groovylex.TermGStringEnd, groovylex.TermGStringPart:
		return "32" // green
	case groovylex.TermNL:
		return "0"
	default:
		return "35" // keywords and operators: magenta
	}
}

func printTerminals(out io.Writer, path string, terms []groovylex.Terminal) {
	color := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Fprintf(out, "== %s ==\n", path)
	for _, t := range terms {
		if !color {
			fmt.Fprintf(out, "%-24s %d:%d %q\n", t.Name, t.Line, t.Column, t.Value)
			continue
		}
		fmt.Fprintf(out, "\x1b[%sm%-24s\x1b[0m %d:%d %q\n", terminalColor(t.Name), t.Name, t.Line, t.Column, t.Value)
	}
}
