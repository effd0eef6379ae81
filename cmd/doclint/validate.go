package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docsascode/doclint/internal/cli/config"
	"github.com/docsascode/doclint/internal/cli/ui"
	"github.com/docsascode/doclint/lint"
	"github.com/docsascode/doclint/lint/findings"
	"github.com/docsascode/doclint/lint/matrix"
)

var (
	validateRoot    string
	validateSystem  string
	validateWrite   bool
	validateStrict  bool
	validateJSON    bool
	validateNoColor bool
	validateDebug   bool
)

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", "", "Corpus root directory (default \"docs\")")
	validateCmd.Flags().StringVar(&validateSystem, "system", "", "System subtree under 20-systems/ to validate")
	validateCmd.Flags().BoolVar(&validateWrite, "write-matrix", false, "Write the traceability matrix artifact")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as failures")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output the report in JSON format")
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable colored output")
	validateCmd.Flags().BoolVar(&validateDebug, "debug", false, "Enable debug logging")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the corpus and report findings",
	Long:  "Load every document of one system, resolve all cross-references, apply the structural rules, and print the validation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		root, system, noColor, strict := mergeOptions(cfg,
			validateRoot, validateSystem, validateNoColor, validateStrict)
		if system == "" {
			return fmt.Errorf("no system selected - pass --system or set it in .doclint.yml")
		}

		logger, err := buildLogger(validateDebug)
		if err != nil {
			return err
		}
		defer logger.Sync()

		res, err := lint.Run(lint.Options{Root: root, System: system, Logger: logger})
		if err != nil {
			return err
		}

		failed := res.HasErrors() || (strict && res.HasWarnings())

		if validateJSON {
			if err := outputReportJSON(os.Stdout, res, system, !failed); err != nil {
				return err
			}
		} else {
			outputReportTerminal(res, noColor)
		}

		// The matrix only gets written or previewed for a corpus whose
		// references actually resolve.
		if !res.HasErrors() {
			if validateWrite {
				path := matrixPath(cfg, root, system)
				if err := matrix.Write(path, res.Matrix); err != nil {
					return err
				}
				if !validateJSON {
					fmt.Printf("\nMatrix written to %s\n", path)
				}
			} else if !validateJSON {
				fmt.Println()
				previewMatrix(res.Matrix, noColor)
			}
		}

		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

// mergeOptions layers flag values over the config file
func mergeOptions(cfg *config.Config, root, system string, noColor, strict bool) (string, string, bool, bool) {
	if root == "" {
		root = cfg.Root
	}
	if system == "" {
		system = cfg.System
	}
	return root, system, noColor || cfg.NoColor, strict || cfg.Strict
}

// matrixPath resolves the artifact location: config override relative to the
// system subtree, or the conventional traceability path.
func matrixPath(cfg *config.Config, root, system string) string {
	if cfg.Matrix.Output != "" {
		return matrix.SystemPath(root, system, cfg.Matrix.Output)
	}
	return matrix.DefaultPath(root, system)
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func outputReportTerminal(res *lint.Result, noColor bool) {
	if len(res.Findings) == 0 {
		ui.WriteSuccess(os.Stdout, fmt.Sprintf("%d document(s), references consistent", len(res.Documents)), noColor)
		return
	}
	ui.WriteReport(os.Stdout, res.Findings, noColor)
}

func outputReportJSON(w io.Writer, res *lint.Result, system string, success bool) error {
	output := struct {
		RunID     string                `json:"run_id"`
		System    string                `json:"system"`
		Success   bool                  `json:"success"`
		Documents int                   `json:"documents"`
		Counts    map[findings.Kind]int `json:"counts"`
		Findings  []findings.Finding    `json:"findings"`
	}{
		RunID:     uuid.NewString(),
		System:    system,
		Success:   success,
		Documents: len(res.Documents),
		Counts:    findings.Count(res.Findings),
		Findings:  res.Findings,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func previewMatrix(rows []matrix.Row, noColor bool) {
	table := ui.NewTable(os.Stdout, matrix.Headers, noColor)
	for _, row := range rows {
		cells := row.Cells()
		table.AddRow(cells[:]...)
	}
	table.Render()
}
