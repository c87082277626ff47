// Command reviewnotes prints the most recent bookings that carry reviewer
// notes, joined to their event and the event's organizer.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"speakerhub/config"
	"speakerhub/database"
	bookingRepo "speakerhub/database/repository/booking"

	"github.com/spf13/cobra"
)

var (
	limit   int64
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "reviewnotes",
	Short: "List bookings with reviewer notes",
	Long: `Connects to the configured MongoDB database (DATABASE_URL, DATABASE_NAME)
and prints bookings whose reviewer_notes field is set, together with the
event they belong to and the organizer profile of that event.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReviewNotes,
}

func init() {
	rootCmd.Flags().Int64Var(&limit, "limit", 5, "maximum number of bookings to print")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "overall query timeout")
}

func runReviewNotes(cmd *cobra.Command, _ []string) error {
	if err := validateLimit(limit); err != nil {
		return err
	}
	config.LoadConfig()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	repo := bookingRepo.NewMongoBookingRepo(client.Database(config.AppConfig.DatabaseName))
	rows, err := repo.ListReviewed(ctx, limit)
	if err != nil {
		return err
	}

	printReviewed(cmd.OutOrStdout(), rows)
	return nil
}

func validateLimit(n int64) error {
	if n < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", n)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
