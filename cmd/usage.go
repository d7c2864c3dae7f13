// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-activity/internal/gateway"
)

// resetTimeLayout renders the quota reset moment in local time.
const resetTimeLayout = "03:04:05 PM | January 02, 2006"

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show remaining GitHub API requests",
	Long: `Shows how many API requests you have used and how many remain in the
current rate limit window, along with the time the window resets.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		logger := newLogger()

		githubGateway, err := gateway.NewGitHubGateway(os.Getenv("GITHUB_TOKEN"), logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		rate, err := githubGateway.RateLimit(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Overall API Request Usage:")
		fmt.Printf("  Used:        %d\n", rate.Used)
		fmt.Printf("  Usage:       %d/%d\n", rate.Remaining, rate.Limit)
		fmt.Printf("  Reset at:    %s\n", rate.ResetAt.Local().Format(resetTimeLayout))

		if rate.Remaining >= 1 && rate.Remaining <= 5 {
			warnColor.Fprintf(os.Stderr, "Warning: You only have %d requests left\n", rate.Remaining)
		}
		return nil
	},
}
