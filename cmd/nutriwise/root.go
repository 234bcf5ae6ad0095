package nutriwise

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dataPath string
	apiURL   string
)

var rootCmd = &cobra.Command{
	Use:   "nutriwise",
	Short: "nutriwise tracks meals, workouts, and dynamic nutrition targets",
	Long:  "nutriwise is a local-first nutrition and activity tracker with AI-assisted meal logging, dynamic calorie/macro targets, and a nutritionist chat.",
}

func Execute() {
	// Best-effort .env load so the estimator URL/key can live next to the
	// working directory during development.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the data file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Estimator endpoint URL (default $NUTRIWISE_API_URL)")
}
