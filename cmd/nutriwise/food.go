package nutriwise

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and adjust food entries",
}

var (
	foodLogImage string
	foodLogDate  string
	foodLogTime  string

	foodAddName     string
	foodAddCalories float64
	foodAddProtein  float64
	foodAddCarbs    float64
	foodAddFat      float64
	foodAddQuantity float64
	foodAddUnit     string
	foodAddDate     string
	foodAddTime     string
	foodAddNotes    string
)

var foodLogCmd = &cobra.Command{
	Use:   "log \"description\"",
	Short: "Analyze a meal description (and optional photo) and log it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.TrimSpace(args[0])
		if description == "" && strings.TrimSpace(foodLogImage) == "" {
			return fmt.Errorf("describe the meal or attach an image")
		}
		at, err := parseDateTimeOrNow(foodLogDate, foodLogTime)
		if err != nil {
			return err
		}
		client, err := newEstimatorClient()
		if err != nil {
			return err
		}

		imageDataURL := ""
		if strings.TrimSpace(foodLogImage) != "" {
			imageDataURL, err = readImageDataURL(foodLogImage)
			if err != nil {
				return err
			}
		}

		analysis, err := client.AnalyzeFood(context.Background(), description, imageDataURL)
		if err != nil {
			return err
		}
		if len(analysis.Items) == 0 {
			return fmt.Errorf("the estimator returned no food items")
		}

		return withStore(func(s *store.Store) error {
			entry, err := s.AddEntry(model.LogEntry{
				Timestamp: at.UnixMilli(),
				Type:      model.EntryFood,
				Items:     analysis.Items,
				Image:     imageDataURL,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s\n", entry.ID)
			printFoodItems(cmd, entry.Items)
			if analysis.Question != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Clarification: %s\n", analysis.Question)
			}
			// Instant feedback is best-effort; a failure is silently skipped.
			if feedback, err := client.InstantFeedback(context.Background(), entry.Items, s.Profile); err == nil && feedback != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Feedback: %s\n", feedback)
			}
			return nil
		})
	},
}

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry manually (no estimator call)",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(foodAddName)
		if name == "" {
			return fmt.Errorf("food name is required")
		}
		if foodAddCalories < 0 || foodAddProtein < 0 || foodAddCarbs < 0 || foodAddFat < 0 {
			return fmt.Errorf("macro values must be >= 0")
		}
		if foodAddQuantity <= 0 {
			return fmt.Errorf("quantity must be > 0")
		}
		at, err := parseDateTimeOrNow(foodAddDate, foodAddTime)
		if err != nil {
			return err
		}

		item := model.FoodItem{
			Name:       name,
			Quantity:   foodAddQuantity,
			Unit:       strings.TrimSpace(foodAddUnit),
			Calories:   foodAddCalories,
			Protein:    foodAddProtein,
			Carbs:      foodAddCarbs,
			Fat:        foodAddFat,
			Confidence: model.ConfidenceHigh,
			Notes:      strings.TrimSpace(foodAddNotes),
		}
		if item.Unit == "" {
			item.Unit = "serving"
		}
		item.DeriveBase()

		return withStore(func(s *store.Store) error {
			entry, err := s.AddEntry(model.LogEntry{
				Timestamp: at.UnixMilli(),
				Type:      model.EntryFood,
				Items:     []model.FoodItem{item},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s\n", entry.ID)
			printFoodItems(cmd, entry.Items)
			return nil
		})
	},
}

var foodRefineCmd = &cobra.Command{
	Use:   "refine <entry-id> \"instruction\"",
	Short: "Correct an analyzed entry via the estimator",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		instruction := strings.TrimSpace(args[1])
		if instruction == "" {
			return fmt.Errorf("refine instruction is required")
		}
		client, err := newEstimatorClient()
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			entry, ok := s.EntryByID(args[0])
			if !ok {
				return fmt.Errorf("entry %s not found", args[0])
			}
			if entry.Type != model.EntryFood {
				return fmt.Errorf("entry %s is not a food entry", entry.ID)
			}

			analysis, err := client.RefineFood(context.Background(), entry.Items, instruction)
			if err != nil {
				return err
			}
			if len(analysis.Items) == 0 {
				return fmt.Errorf("the estimator returned no food items")
			}
			entry.Items = analysis.Items
			if err := s.UpdateEntry(entry); err != nil {
				return err
			}
			printFoodItems(cmd, entry.Items)
			if analysis.Message != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Assistant: %s\n", analysis.Message)
			}
			return nil
		})
	},
}

var foodQuantityCmd = &cobra.Command{
	Use:   "quantity <entry-id> <item#> <qty>",
	Short: "Rescale an item to a new quantity using its per-unit values",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil || index <= 0 {
			return fmt.Errorf("invalid item number %q", args[1])
		}
		quantity, err := strconv.ParseFloat(args[2], 64)
		if err != nil || quantity <= 0 {
			return fmt.Errorf("quantity must be > 0")
		}
		return withStore(func(s *store.Store) error {
			entry, ok := s.EntryByID(args[0])
			if !ok {
				return fmt.Errorf("entry %s not found", args[0])
			}
			if entry.Type != model.EntryFood {
				return fmt.Errorf("entry %s is not a food entry", entry.ID)
			}
			if index > len(entry.Items) {
				return fmt.Errorf("entry %s has %d item(s)", entry.ID, len(entry.Items))
			}
			entry.Items[index-1].Rescale(quantity)
			if err := s.UpdateEntry(entry); err != nil {
				return err
			}
			printFoodItems(cmd, entry.Items)
			return nil
		})
	},
}

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func readImageDataURL(path string) (string, error) {
	mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q (use jpg, png, or webp)", filepath.Ext(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image file: %w", err)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodLogCmd, foodAddCmd, foodRefineCmd, foodQuantityCmd)

	foodLogCmd.Flags().StringVar(&foodLogImage, "image", "", "Path to a meal photo")
	foodLogCmd.Flags().StringVar(&foodLogDate, "date", "", "Date YYYY-MM-DD (default now)")
	foodLogCmd.Flags().StringVar(&foodLogTime, "time", "", "Time HH:MM")

	foodAddCmd.Flags().StringVar(&foodAddName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodAddCalories, "calories", 0, "Calories")
	foodAddCmd.Flags().Float64Var(&foodAddProtein, "protein", 0, "Protein grams")
	foodAddCmd.Flags().Float64Var(&foodAddCarbs, "carbs", 0, "Carb grams")
	foodAddCmd.Flags().Float64Var(&foodAddFat, "fat", 0, "Fat grams")
	foodAddCmd.Flags().Float64Var(&foodAddQuantity, "quantity", 1, "Quantity")
	foodAddCmd.Flags().StringVar(&foodAddUnit, "unit", "serving", "Quantity unit")
	foodAddCmd.Flags().StringVar(&foodAddDate, "date", "", "Date YYYY-MM-DD (default now)")
	foodAddCmd.Flags().StringVar(&foodAddTime, "time", "", "Time HH:MM")
	foodAddCmd.Flags().StringVar(&foodAddNotes, "notes", "", "Item notes")
}
