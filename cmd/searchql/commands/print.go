package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/searchql/validator/parser"
	"github.com/searchql/validator/printer"
	"github.com/searchql/validator/symbols"
)

var printCmd = &cobra.Command{
	Use:   "print [file...|-]",
	Short: "Print queries normalized, with variables substituted",
	Long: `Parse each document and print it back with whitespace normalized
and variable references replaced by their values.

Examples:
  searchql print queries.txt
  cat queries.txt | searchql print -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPrint(args, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(files []string, w io.Writer) error {
	for _, file := range files {
		text, err := readInput(file)
		if err != nil {
			return err
		}
		doc := parser.Parse(text)
		table := symbols.NewGitHubTable()
		table.AddDocument(doc)

		resolve := func(name string) (string, bool) {
			sym, ok := table.GetFirst(name)
			if !ok || sym.Kind != symbols.KindUser {
				return "", false
			}
			return sym.Value, true
		}
		fmt.Fprintln(w, printer.Print(doc, doc.Text, resolve))
	}
	return nil
}
