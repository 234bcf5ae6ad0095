package nutriwise

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	importFile   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, logs, and chat history to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withStore(func(s *store.Store) error {
			profile, logs, chat := s.Snapshot()
			doc := service.BuildExport(profile, logs, chat)
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a backup JSON file, replacing the present sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importFile) == "" {
			return fmt.Errorf("--file is required")
		}
		raw, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		doc, err := service.ParseImport(raw)
		if err != nil {
			return err
		}
		if importDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Dry-run: %s contains %d log entries and a valid profile\n", importFile, len(doc.Logs))
			return nil
		}
		return withStore(func(s *store.Store) error {
			if err := s.ReplaceAll(&doc.Profile, doc.Logs, doc.ChatHistory); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d log entries\n", len(doc.Logs))
			if doc.ChatHistory != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d chat messages\n", len(doc.ChatHistory))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importFile, "file", "", "Backup file path")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate without writing data")
}
