package nutriwise

import (
	"fmt"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			report, fixed := service.RunDoctor(s.Logs, doctorFix)
			fmt.Fprintf(cmd.OutOrStdout(), "Unknown-type entries: %d\n", report.UnknownTypeEntries)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Non-positive quantities: %d\n", report.NonPositiveQuantity)
			fmt.Fprintf(cmd.OutOrStdout(), "Negative macro items: %d\n", report.NegativeMacroItems)
			fmt.Fprintf(cmd.OutOrStdout(), "Non-finite values: %d\n", report.NonFiniteValues)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid exercise entries: %d\n", report.InvalidExerciseRows)
			if doctorFix {
				if err := s.ReplaceAll(nil, fixed, nil); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed items: %d\n", report.FixedItems)
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed exercise entries: %d\n", report.FixedExerciseEntries)
				// Re-check after fixes so exit status reflects final state.
				report, _ = service.RunDoctor(s.Logs, false)
			}
			if report.HasIssues() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
