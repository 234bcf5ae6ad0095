package nutriwise

import (
	"fmt"
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

const trendBarScale = 200 // kcal per bar segment

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the 7-day calorie intake trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			points := service.WeeklyTrend(s.Logs, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tKCAL\t")
			for _, p := range points {
				segments := int(p.Calories) / trendBarScale
				if segments < 0 {
					segments = 0
				}
				bar := strings.Repeat("#", segments)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", p.Label, service.RoundCalories(p.Calories), bar)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}
