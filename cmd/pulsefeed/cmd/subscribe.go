package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pulsefeed/pulsefeed/internal/store"
	"github.com/spf13/cobra"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe [email]",
	Short: "Sign an address up for the newsletter",
	Long: `Record a newsletter subscription. Without the hosted query service
configured, the signup is acknowledged without being persisted.

Example:
  pulsefeed subscribe reader@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runSubscribe,
}

func init() {
	rootCmd.AddCommand(subscribeCmd)
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := buildStore(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	status, err := store.NewNewsletter(client).Subscribe(ctx, args[0])
	if err != nil {
		return fmt.Errorf("subscription failed: %w", err)
	}

	fmt.Println(status.Message())
	return nil
}
