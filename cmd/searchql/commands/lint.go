package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sv "github.com/searchql/validator"
	"github.com/searchql/validator/ast"
	"github.com/searchql/validator/engine"
	"github.com/searchql/validator/internal/config"
	"github.com/searchql/validator/parser"
	"github.com/searchql/validator/symbols"
)

var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [file...|-]",
	Short: "Validate search-query documents",
	Long: `Validate one or more query documents and report every semantic
finding with its source position.

Exit codes:
  0 - No findings
  1 - Findings reported or a file could not be read

Examples:
  searchql lint queries.txt
  cat queries.txt | searchql lint -
  searchql lint --output json queries.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runLint(args, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// lintOutput is the per-file structure for json and yaml output.
type lintOutput struct {
	File        string       `json:"file" yaml:"file"`
	Valid       bool         `json:"valid" yaml:"valid"`
	Diagnostics []diagOutput `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// diagOutput is a single finding in json and yaml output.
type diagOutput struct {
	Severity string `json:"severity" yaml:"severity"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`

	ConflictLine   int `json:"conflictLine,omitempty" yaml:"conflictLine,omitempty"`
	ConflictColumn int `json:"conflictColumn,omitempty" yaml:"conflictColumn,omitempty"`
}

func runLint(files []string, w io.Writer) error {
	validator := engine.New()
	var outputs []lintOutput
	failed := false

	for _, file := range files {
		text, err := readInput(file)
		if err != nil {
			return err
		}

		doc := parser.Parse(text)
		table := symbols.NewGitHubTable()
		table.AddDocument(doc)

		result := sv.AcquireResult()
		result.AddAll(validator.Validate(doc, table))
		if !result.Valid {
			failed = true
		}

		switch cfg.Output {
		case config.OutputText:
			printTextDiagnostics(w, file, doc, result.Diagnostics)
		default:
			outputs = append(outputs, buildLintOutput(file, doc, result))
		}
		result.Release()
	}

	switch cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return errors.Wrap(err, "encoding json output")
		}
	case config.OutputYAML:
		if err := yaml.NewEncoder(w).Encode(outputs); err != nil {
			return errors.Wrap(err, "encoding yaml output")
		}
	}

	if failed {
		return errLintFailed
	}
	return nil
}

func printTextDiagnostics(w io.Writer, file string, doc *ast.QueryDocument, diags []sv.Diagnostic) {
	severityColor := map[sv.Severity]*color.Color{
		sv.SeverityError:       color.New(color.FgRed),
		sv.SeverityWarning:     color.New(color.FgYellow),
		sv.SeverityInformation: color.New(color.FgCyan),
	}
	for _, d := range diags {
		pos := ast.PositionAt(doc.Text, d.Node.Span().Start)
		severity := string(d.Severity)
		if c, ok := severityColor[d.Severity]; ok && cfg.Color {
			severity = c.Sprint(severity)
		}
		fmt.Fprintf(w, "%s:%d:%d %s: %s", file, pos.Line, pos.Column, severity, d.Message)
		if d.Conflict != nil {
			cpos := ast.PositionAt(doc.Text, d.Conflict.Span().Start)
			fmt.Fprintf(w, " (conflicts with expression at %d:%d)", cpos.Line, cpos.Column)
		}
		fmt.Fprintln(w)
	}
}

func buildLintOutput(file string, doc *ast.QueryDocument, result *sv.Result) lintOutput {
	out := lintOutput{File: file, Valid: result.Valid}
	for _, d := range result.Diagnostics {
		pos := ast.PositionAt(doc.Text, d.Node.Span().Start)
		diag := diagOutput{
			Severity: string(d.Severity),
			Code:     string(d.Code),
			Message:  d.Message,
			Line:     pos.Line,
			Column:   pos.Column,
		}
		if d.Conflict != nil {
			cpos := ast.PositionAt(doc.Text, d.Conflict.Span().Start)
			diag.ConflictLine = cpos.Line
			diag.ConflictColumn = cpos.Column
		}
		out.Diagnostics = append(out.Diagnostics, diag)
	}
	return out
}
