package nutriwise

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List, inspect, and delete log entries",
}

var (
	entriesDate  string
	entriesFrom  string
	entriesTo    string
	entriesType  string
	entriesLimit int
)

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(entriesDate) != "" && (strings.TrimSpace(entriesFrom) != "" || strings.TrimSpace(entriesTo) != "") {
			return fmt.Errorf("--date cannot be combined with --from or --to")
		}
		var from, to time.Time
		var err error
		if strings.TrimSpace(entriesDate) != "" {
			from, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(entriesDate), time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", entriesDate)
			}
			to = from.AddDate(0, 0, 1)
		}
		if strings.TrimSpace(entriesFrom) != "" {
			from, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(entriesFrom), time.Local)
			if err != nil {
				return fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", entriesFrom)
			}
		}
		if strings.TrimSpace(entriesTo) != "" {
			to, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(entriesTo), time.Local)
			if err != nil {
				return fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", entriesTo)
			}
			to = to.AddDate(0, 0, 1)
		}

		filterType := strings.ToLower(strings.TrimSpace(entriesType))
		switch filterType {
		case "", string(model.EntryFood), string(model.EntryExercise), string(model.EntryNote):
		default:
			return fmt.Errorf("invalid --type %q (use food, exercise, or note)", entriesType)
		}

		return withStore(func(s *store.Store) error {
			_, logs, _ := s.Snapshot()
			sort.Slice(logs, func(i, j int) bool { return logs[i].Timestamp > logs[j].Timestamp })

			limit := entriesLimit
			if limit <= 0 {
				limit = 50
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tWHEN\tTYPE\tSUMMARY")
			shown := 0
			for _, entry := range logs {
				if shown >= limit {
					break
				}
				at := entry.Time()
				if !from.IsZero() && at.Before(from) {
					continue
				}
				if !to.IsZero() && !at.Before(to) {
					continue
				}
				if filterType != "" && string(entry.Type) != filterType {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					entry.ID, at.Format("2006-01-02 15:04"), entry.Type, entrySummary(entry))
				shown++
			}
			return nil
		})
	},
}

var entriesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entry, ok := s.EntryByID(args[0])
			if !ok {
				return fmt.Errorf("entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", entry.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "When: %s\n", entry.Time().Format("2006-01-02 15:04"))
			fmt.Fprintf(cmd.OutOrStdout(), "Type: %s\n", entry.Type)
			switch entry.Type {
			case model.EntryFood:
				printFoodItems(cmd, entry.Items)
				if entry.Image != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Image: attached")
				}
			case model.EntryExercise:
				if entry.Exercise != nil {
					ex := entry.Exercise
					fmt.Fprintf(cmd.OutOrStdout(), "Exercise: %s\n", ex.Name)
					fmt.Fprintf(cmd.OutOrStdout(), "Duration: %d min\n", ex.DurationMinutes)
					fmt.Fprintf(cmd.OutOrStdout(), "Burned: %.0f kcal\n", ex.CaloriesBurned)
					fmt.Fprintf(cmd.OutOrStdout(), "Intensity: %s\n", ex.Intensity)
				}
			case model.EntryNote:
				fmt.Fprintf(cmd.OutOrStdout(), "Content: %s\n", entry.Content)
			}
			return nil
		})
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteEntry(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
	entriesCmd.AddCommand(entriesListCmd, entriesShowCmd, entriesDeleteCmd)

	entriesListCmd.Flags().StringVar(&entriesDate, "date", "", "Single date YYYY-MM-DD")
	entriesListCmd.Flags().StringVar(&entriesFrom, "from", "", "Start date YYYY-MM-DD (inclusive)")
	entriesListCmd.Flags().StringVar(&entriesTo, "to", "", "End date YYYY-MM-DD (inclusive)")
	entriesListCmd.Flags().StringVar(&entriesType, "type", "", "Filter by type: food|exercise|note")
	entriesListCmd.Flags().IntVar(&entriesLimit, "limit", 50, "Maximum rows")
}
