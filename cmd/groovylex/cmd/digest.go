package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	groovylex "go.groovylex.dev/pkg"
)

var digestCmd = &cobra.Command{
	Use:   "digest <file>",
	Short: "Lex a source file and print its terminal stream as a compact JSON digest",
	Long: `digest lexes and adapts a source file into its terminal stream and wraps
it as a single "script_statement" rule so Digest has something to prune and
print. A real grammar engine would hand Digest an actual parse tree; this
command only exercises the token stream this repository does produce.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		l := groovylex.NewLexer(path, string(src))
		a := groovylex.NewAdapter(l)
		terms, err := a.Run()
		if err != nil {
			return err
		}

		children := make([]groovylex.Tree, 0, len(terms))
		for _, t := range terms {
			children = append(children, groovylex.Leaf{Terminal: t.Name, Value: t.Value})
		}
		tree := groovylex.Rule{Name: "script_statement", Children: children}

		digested := groovylex.Digest(tree, groovylex.DefaultDigestConfig())
		out, err := json.MarshalIndent(digested, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}
