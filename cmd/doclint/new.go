package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/docsascode/doclint/lint/doc"
)

//go:embed templates/*
var templatesFS embed.FS

var newRoot string

func init() {
	newCmd.Flags().StringVar(&newRoot, "root", "docs", "Corpus root directory")
}

var newCmd = &cobra.Command{
	Use:   "new <system>",
	Short: "Scaffold a new system subtree",
	Long:  "Create the numbered folder skeleton for a system with sample documents that validate clean",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		system := args[0]

		// Validate system name
		if strings.TrimSpace(system) == "" {
			return fmt.Errorf("system name cannot be empty")
		}
		if strings.Contains(system, "..") {
			return fmt.Errorf("system name cannot contain '..'")
		}
		if strings.ContainsAny(system, "/\\") {
			return fmt.Errorf("system name cannot contain path separators")
		}
		if strings.HasPrefix(system, ".") {
			return fmt.Errorf("system name cannot start with '.'")
		}

		base := filepath.Join(newRoot, doc.SystemsDir, system)
		if _, err := os.Stat(base); err == nil {
			return fmt.Errorf("system %s already exists at %s", system, base)
		}

		dirs := []string{
			filepath.Join(base, "21-screens", "TELA_EXEMPLO"),
			filepath.Join(base, "22-components"),
			filepath.Join(base, "23-requirements"),
			filepath.Join(base, "24-rules"),
			filepath.Join(base, "25-flows"),
			filepath.Join(base, doc.TraceabilityDir),
		}
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}

		data := map[string]string{
			"System": system,
		}

		files := map[string]string{
			"21-screens/TELA_EXEMPLO/screen.yml":   "templates/screen.yml.tmpl",
			"21-screens/TELA_EXEMPLO/messages.yml": "templates/messages.yml.tmpl",
			"22-components/INP_EXEMPLO.yml":        "templates/component.yml.tmpl",
			"23-requirements/RF-001.yml":           "templates/requirement.yml.tmpl",
			"24-rules/RN-001.yml":                  "templates/rule.yml.tmpl",
			"25-flows/UC-001-exemplo.yml":          "templates/flow.yml.tmpl",
		}

		for destPath, tmplPath := range files {
			destFullPath := filepath.Join(base, destPath)

			tmplContent, err := templatesFS.ReadFile(tmplPath)
			if err != nil {
				return fmt.Errorf("failed to read template %s: %w", tmplPath, err)
			}

			tmpl, err := template.New(filepath.Base(tmplPath)).Parse(string(tmplContent))
			if err != nil {
				return fmt.Errorf("failed to parse template %s: %w", tmplPath, err)
			}

			f, err := os.Create(destFullPath)
			if err != nil {
				return fmt.Errorf("failed to create file %s: %w", destFullPath, err)
			}

			if err := tmpl.Execute(f, data); err != nil {
				f.Close()
				return fmt.Errorf("failed to execute template %s: %w", tmplPath, err)
			}

			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close file %s: %w", destFullPath, err)
			}
		}

		fmt.Printf("Created system %s at %s\n", system, base)
		fmt.Println("\nNext steps:")
		fmt.Printf("  doclint validate --root %s --system %s\n", newRoot, system)
		fmt.Printf("  doclint matrix --root %s --system %s\n", newRoot, system)
		return nil
	},
}
