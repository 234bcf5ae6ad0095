package nutriwise

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/app"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/estimator"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

func resolveDataPath() (string, error) {
	if strings.TrimSpace(dataPath) != "" {
		return dataPath, nil
	}
	return app.DefaultDataPath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDataPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDataDir(path); err != nil {
		return err
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return run(s)
}

func newEstimatorClient() (*estimator.Client, error) {
	url := strings.TrimSpace(apiURL)
	if url == "" {
		url = strings.TrimSpace(os.Getenv("NUTRIWISE_API_URL"))
	}
	if url == "" {
		return nil, fmt.Errorf("estimator URL is not configured (set --api-url or NUTRIWISE_API_URL)")
	}
	return &estimator.Client{
		BaseURL: url,
		APIKey:  strings.TrimSpace(os.Getenv("NUTRIWISE_API_KEY")),
	}, nil
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func parseDateOrToday(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func printFoodItems(cmd *cobra.Command, items []model.FoodItem) {
	fmt.Fprintln(cmd.OutOrStdout(), "#\tNAME\tQTY\tUNIT\tKCAL\tP\tC\tF\tCONF")
	for i, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%g\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%s\n",
			i+1, item.Name, item.Quantity, item.Unit, item.Calories, item.Protein, item.Carbs, item.Fat, item.Confidence)
	}
}

func entrySummary(entry model.LogEntry) string {
	switch entry.Type {
	case model.EntryFood:
		var kcal float64
		names := make([]string, 0, len(entry.Items))
		for _, item := range entry.Items {
			kcal += item.Calories
			names = append(names, item.Name)
		}
		return fmt.Sprintf("%s (%.0f kcal)", strings.Join(names, ", "), kcal)
	case model.EntryExercise:
		if entry.Exercise == nil {
			return "exercise"
		}
		return fmt.Sprintf("%s %dmin (%.0f kcal, %s)",
			entry.Exercise.Name, entry.Exercise.DurationMinutes, entry.Exercise.CaloriesBurned, entry.Exercise.Intensity)
	default:
		return entry.Content
	}
}
