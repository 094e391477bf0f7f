package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/searchql/validator/extract"
	"github.com/searchql/validator/internal/config"
	"github.com/searchql/validator/parser"
	"github.com/searchql/validator/symbols"
)

var reposCmd = &cobra.Command{
	Use:   "repos [file...|-]",
	Short: "Extract owner/repo pairs from query documents",
	Long: `Extract the repositories named by repo: qualifiers, resolving
variable references, in document order. Values without an owner/name
separator are skipped.

Examples:
  searchql repos queries.txt
  searchql repos --output json queries.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runRepos(args, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

// repoOutput is one extracted pair in json and yaml output.
type repoOutput struct {
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
}

func runRepos(files []string, w io.Writer) error {
	var out []repoOutput
	for _, file := range files {
		text, err := readInput(file)
		if err != nil {
			return err
		}
		doc := parser.Parse(text)
		table := symbols.NewGitHubTable()
		table.AddDocument(doc)

		for info := range extract.Repos(doc, table) {
			switch cfg.Output {
			case config.OutputText:
				fmt.Fprintln(w, info)
			default:
				out = append(out, repoOutput{Owner: info.Owner, Name: info.Name})
			}
		}
	}

	switch cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encoding json output")
		}
	case config.OutputYAML:
		if err := yaml.NewEncoder(w).Encode(out); err != nil {
			return errors.Wrap(err, "encoding yaml output")
		}
	}
	return nil
}
