package nutriwise

import (
	"context"
	"fmt"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log exercise sessions",
}

var (
	exerciseName      string
	exerciseDuration  int
	exerciseIntensity string
	exerciseCalories  float64
	exerciseDate      string
	exerciseTime      string
)

var exerciseLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an exercise session",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(exerciseName)
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		if exerciseDuration <= 0 {
			return fmt.Errorf("duration must be > 0")
		}
		intensity := model.Intensity(strings.ToLower(strings.TrimSpace(exerciseIntensity)))
		if !intensity.Valid() {
			return fmt.Errorf("invalid --intensity %q (use low, medium, or high)", exerciseIntensity)
		}
		if exerciseCalories < 0 {
			return fmt.Errorf("calories must be >= 0")
		}
		at, err := parseDateTimeOrNow(exerciseDate, exerciseTime)
		if err != nil {
			return err
		}

		return withStore(func(s *store.Store) error {
			burned := exerciseCalories
			note := ""
			if !cmd.Flags().Changed("calories") {
				// Ask the estimator; fall back to the local flat-rate
				// estimate only when the call itself fails. A successful
				// zero-calorie estimate is kept as-is.
				estimated := false
				if client, err := newEstimatorClient(); err == nil {
					if est, err := client.EstimateExercise(context.Background(), name, exerciseDuration, intensity, s.Profile); err == nil {
						burned = est.Calories
						note = est.Note
						estimated = true
					}
				}
				if !estimated {
					burned = service.OfflineExerciseCalories(exerciseDuration, intensity)
					note = "offline estimate"
				}
			}

			entry, err := s.AddEntry(model.LogEntry{
				Timestamp: at.UnixMilli(),
				Type:      model.EntryExercise,
				Exercise: &model.ExerciseDetails{
					Name:            name,
					DurationMinutes: exerciseDuration,
					CaloriesBurned:  burned,
					Intensity:       intensity,
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s: %s %dmin, %.0f kcal burned\n",
				entry.ID, name, exerciseDuration, burned)
			if note != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Note: %s\n", note)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseLogCmd)

	exerciseLogCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseLogCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseLogCmd.Flags().StringVar(&exerciseIntensity, "intensity", "medium", "Intensity: low|medium|high")
	exerciseLogCmd.Flags().Float64Var(&exerciseCalories, "calories", 0, "Calories burned (skips estimation)")
	exerciseLogCmd.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default now)")
	exerciseLogCmd.Flags().StringVar(&exerciseTime, "time", "", "Time HH:MM")
}
