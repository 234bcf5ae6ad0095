package nutriwise

import (
	"context"
	"fmt"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

const fallbackAdvice = "Keep logging consistently: hitting your protein target and staying near your calorie target are the two highest-leverage habits."

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Get personalized advice for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			dashboard := service.DashboardFor(s.Logs, s.Profile, time.Now())

			text := fallbackAdvice
			if client, err := newEstimatorClient(); err == nil {
				if remote, err := client.Advice(context.Background(), s.Profile, dashboard); err == nil && remote != "" {
					text = remote
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(adviceCmd)
}
