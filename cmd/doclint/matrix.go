package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docsascode/doclint/internal/cli/config"
	"github.com/docsascode/doclint/internal/cli/ui"
	"github.com/docsascode/doclint/lint"
	"github.com/docsascode/doclint/lint/matrix"
)

var (
	matrixRoot    string
	matrixSystem  string
	matrixOutput  string
	matrixPrint   bool
	matrixNoColor bool
)

func init() {
	matrixCmd.Flags().StringVar(&matrixRoot, "root", "", "Corpus root directory (default \"docs\")")
	matrixCmd.Flags().StringVar(&matrixSystem, "system", "", "System subtree under 20-systems/ to trace")
	matrixCmd.Flags().StringVarP(&matrixOutput, "output", "o", "", "Artifact path (default 27-traceability/matrix.md under the system subtree)")
	matrixCmd.Flags().BoolVar(&matrixPrint, "print", false, "Print the markdown artifact to stdout instead of writing it")
	matrixCmd.Flags().BoolVar(&matrixNoColor, "no-color", false, "Disable colored output")
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Generate the traceability matrix artifact",
	Long:  "Run the pipeline and write the traceability matrix. A corpus with unresolved references fails instead of producing a partial artifact.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		root, system, noColor, _ := mergeOptions(cfg, matrixRoot, matrixSystem, matrixNoColor, false)
		if system == "" {
			return fmt.Errorf("no system selected - pass --system or set it in .doclint.yml")
		}

		res, err := lint.Run(lint.Options{Root: root, System: system, Logger: zap.NewNop()})
		if err != nil {
			return err
		}

		if res.HasErrors() {
			ui.WriteReport(os.Stdout, res.Findings, noColor)
			return fmt.Errorf("corpus has errors, matrix not generated")
		}

		if matrixPrint {
			os.Stdout.Write(matrix.Markdown(res.Matrix))
			return nil
		}

		path := matrixOutput
		if path == "" {
			path = matrixPath(cfg, root, system)
		}
		if err := matrix.Write(path, res.Matrix); err != nil {
			return err
		}
		fmt.Printf("Matrix written to %s (%d row(s))\n", path, len(res.Matrix))
		return nil
	},
}
