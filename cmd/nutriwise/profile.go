package nutriwise

import (
	"fmt"
	"strings"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

const lbPerKg = 2.2046226218

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your physiological profile and goal",
}

var (
	profileName        string
	profileAge         int
	profileHeight      float64
	profileWeight      float64
	profileWeightUnit  string
	profileGender      string
	profileActivity    string
	profileGoal        string
	profilePreferences string
)

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			p := s.Profile
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.Goal)
			if p.DietaryPreferences != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Preferences: %s\n", p.DietaryPreferences)
			}
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			p := s.Profile
			updates := 0
			if cmd.Flags().Changed("name") {
				p.Name = strings.TrimSpace(profileName)
				updates++
			}
			if cmd.Flags().Changed("age") {
				p.Age = profileAge
				updates++
			}
			if cmd.Flags().Changed("height") {
				p.HeightCm = profileHeight
				updates++
			}
			if cmd.Flags().Changed("weight") {
				weight := profileWeight
				switch strings.ToLower(strings.TrimSpace(profileWeightUnit)) {
				case "", "kg":
				case "lb":
					weight = weight / lbPerKg
				default:
					return fmt.Errorf("invalid --weight-unit %q (use kg or lb)", profileWeightUnit)
				}
				p.WeightKg = weight
				updates++
			}
			if cmd.Flags().Changed("gender") {
				p.Gender = model.Gender(strings.ToLower(strings.TrimSpace(profileGender)))
				updates++
			}
			if cmd.Flags().Changed("activity") {
				p.ActivityLevel = model.ActivityLevel(strings.ToLower(strings.TrimSpace(profileActivity)))
				updates++
			}
			if cmd.Flags().Changed("goal") {
				p.Goal = model.Goal(strings.ToLower(strings.TrimSpace(profileGoal)))
				updates++
			}
			if cmd.Flags().Changed("preferences") {
				p.DietaryPreferences = strings.TrimSpace(profilePreferences)
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			if err := s.SetProfile(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d profile field(s)\n", updates)
			return nil
		})
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the profile to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ResetProfile(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile reset to defaults")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileResetCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileWeightUnit, "weight-unit", "kg", "Weight unit: kg or lb")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male|female|other")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary|light|moderate|active|athlete")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose_fat|maintain|gain_muscle")
	profileSetCmd.Flags().StringVar(&profilePreferences, "preferences", "", "Dietary preferences free text")
}
