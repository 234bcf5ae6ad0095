package nutriwise

import (
	"fmt"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Add free-form notes to your log",
}

var (
	noteDate string
	noteTime string
)

var noteAddCmd = &cobra.Command{
	Use:   "add \"text\"",
	Short: "Add a note entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(args[0])
		if content == "" {
			return fmt.Errorf("note text is required")
		}
		at, err := parseDateTimeOrNow(noteDate, noteTime)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			entry, err := s.AddEntry(model.LogEntry{
				Timestamp: at.UnixMilli(),
				Type:      model.EntryNote,
				Content:   content,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s\n", entry.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)

	noteAddCmd.Flags().StringVar(&noteDate, "date", "", "Date YYYY-MM-DD (default now)")
	noteAddCmd.Flags().StringVar(&noteTime, "time", "", "Time HH:MM")
}
