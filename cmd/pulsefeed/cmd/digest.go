package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/format"
	"github.com/spf13/cobra"
)

var (
	digestDate       string
	digestMode       string
	digestCheckLimit bool
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Build the digest for a date",
	Long: `Aggregate all sources, keep the items relevant to a date, and render
them in one of three modes.

Examples:
  # Today's digest, plain rendering
  pulsefeed digest

  # A specific day, short social rendering with character check
  pulsefeed digest --date 2026-08-30 --mode short --check-limit

  # Full rendering with descriptions and links
  pulsefeed digest --mode long`,
	RunE: runDigest,
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringVar(&digestDate, "date", "", "Target date as YYYY-MM-DD (default: today)")
	digestCmd.Flags().StringVar(&digestMode, "mode", "plain", "Rendering mode: short, long or plain")
	digestCmd.Flags().BoolVar(&digestCheckLimit, "check-limit", false, "Report the payload length against the short-surface budget")
}

func runDigest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := GetConfig()

	date := time.Now()
	if digestDate != "" {
		parsed, err := time.Parse("2006-01-02", digestDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", digestDate)
		}
		date = parsed
	}

	mode := format.Mode(digestMode)
	switch mode {
	case format.ModeShort, format.ModeLong, format.ModePlain:
	default:
		return fmt.Errorf("invalid --mode %q, want short, long or plain", digestMode)
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	result := pipeline.Build(ctx, date, mode)

	fmt.Println(result.Payload)

	if digestCheckLimit {
		status := "within"
		if result.Report.ExceedsLimit {
			status = "exceeds"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d characters, %s the %d limit\n",
			result.Report.Count, status, format.CharLimit)
	}

	for _, err := range result.Errors {
		slog.Warn("source failure", "error", err)
	}

	// Keep a running build counter when state is file-backed
	if stateStore, err := openState(cfg); err == nil {
		if _, err := stateStore.Increment("digest_builds"); err != nil {
			slog.Debug("failed to record digest build", "error", err)
		}
	}

	return nil
}
