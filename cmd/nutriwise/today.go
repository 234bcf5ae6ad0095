package nutriwise

import (
	"fmt"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, training load, and dynamic targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			d := service.DashboardFor(s.Logs, s.Profile, target)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", d.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d kcal\n", d.IntakeCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Burned: %d kcal\n", d.BurnedCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Net: %d kcal\n", d.NetCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %.1fg | C %.1fg | F %.1fg\n", d.ProteinG, d.CarbsG, d.FatG)
			if d.TrainingLoad {
				fmt.Fprintln(cmd.OutOrStdout(), "Training load: high")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target: %d kcal | P %dg | C %dg | F %dg\n",
				d.TargetCalories, d.TargetProteinG, d.TargetCarbsG, d.TargetFatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %d kcal\n", d.RemainingCalories)
			if d.Advice != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Advice: %s\n", d.Advice)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
