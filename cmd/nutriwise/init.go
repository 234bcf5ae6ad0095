package nutriwise

import (
	"fmt"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data file and default state",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDataPath()
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized data file at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
