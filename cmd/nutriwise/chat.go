package nutriwise

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/service"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat \"message\"",
	Short: "Ask the nutritionist about your history",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		message := strings.TrimSpace(args[0])
		if message == "" {
			return fmt.Errorf("message is required")
		}
		client, err := newEstimatorClient()
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if _, err := s.AppendChat(model.RoleUser, message); err != nil {
				return err
			}
			// Context is the profile plus today's summary. Images never
			// travel with chat context.
			dashboard := service.DashboardFor(s.Logs, s.Profile, time.Now())
			reply, err := client.Chat(context.Background(), s.Chat, message, map[string]any{
				"profile": s.Profile,
				"today":   dashboard,
			})
			if err != nil {
				return err
			}
			if _, err := s.AppendChat(model.RoleModel, reply); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		})
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, msg := range s.Chat {
				at := time.UnixMilli(msg.Timestamp).Local()
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", at.Format("2006-01-02 15:04"), msg.Role, msg.Text)
			}
			return nil
		})
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ClearChat(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatHistoryCmd, chatClearCmd)
}
