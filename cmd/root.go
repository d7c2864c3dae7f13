// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-activity/internal/domain"
	"github.com/naka-gawa/github-activity/internal/gateway"
	"github.com/naka-gawa/github-activity/internal/pager"
	"github.com/naka-gawa/github-activity/internal/usecase"
)

var version = "0.1.1"

// Console colors, consistent across all commands.
var (
	headerColor = color.New(color.FgCyan, color.Bold)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "github-activity [username] [event]",
	Short: "A CLI tool to display a GitHub user's recent public activity.",
	Long: `github-activity retrieves and displays a GitHub user's recent public
activity: push events, pull requests, issues, stars, forks and more.
Pass an event type (push, pull, star, issues, fork, delete, comment,
create) as the second argument to show a single kind of activity.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("username is required")
		}
		username := args[0]
		filterToken := ""
		if len(args) == 2 {
			filterToken = args[1]
		}

		ctx := context.Background()
		logger := newLogger()
		if viper.GetBool("no-color") {
			color.NoColor = true
		}

		githubGateway, err := gateway.NewGitHubGateway(os.Getenv("GITHUB_TOKEN"), logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		feed := usecase.NewFeed(githubGateway, logger)
		lines, err := feed.Lines(ctx, username, filterToken)
		if err != nil {
			var invalidFilter *domain.InvalidFilterError
			if errors.As(err, &invalidFilter) {
				_ = cmd.Usage()
				return err
			}
			if errors.Is(err, domain.ErrQuotaExhausted) {
				return fmt.Errorf("%w; run 'github-activity usage' to check when your limit resets", err)
			}
			return err
		}

		p := pager.New(os.Stdout, pager.NewTerminalReader(), viper.GetInt("page-size"))
		if err := p.Run(colorizeHeaders(lines), feedTitle(filterToken)); err != nil {
			return err
		}

		warnOnLowQuota(ctx, githubGateway, logger)
		return nil
	},
}

// newLogger builds the shared logger. All logs are discarded unless the
// user asked for verbose output.
func newLogger() *log.Logger {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if viper.GetBool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// feedTitle names the active filter in the pager header.
func feedTitle(filterToken string) string {
	if filterToken == "" {
		return "All"
	}
	return strings.ToUpper(filterToken[:1]) + strings.ToLower(filterToken[1:])
}

// colorizeHeaders highlights the date header lines. Message lines all
// start with "-"; anything else non-blank is a header.
func colorizeHeaders(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line != "" && !strings.HasPrefix(line, "-") {
			out[i] = headerColor.Sprint(line)
		} else {
			out[i] = line
		}
	}
	return out
}

// warnOnLowQuota re-reads the rate limit after paging and nudges the
// user when few requests remain. Failures here are logged, not fatal;
// the feed was already shown.
func warnOnLowQuota(ctx context.Context, fetcher gateway.Fetcher, logger *log.Logger) {
	rate, err := fetcher.RateLimit(ctx)
	if err != nil {
		logger.Printf("Failed to re-check rate limit: %v\n", err)
		return
	}
	switch {
	case rate.Remaining >= 1 && rate.Remaining <= 5:
		plural := "s"
		if rate.Remaining == 1 {
			plural = ""
		}
		warnColor.Fprintf(os.Stderr, "Warning: You only have %d request%s left\n", rate.Remaining, plural)
	case rate.Remaining < 1:
		warnColor.Fprintln(os.Stderr, "You have no requests remaining. Run 'github-activity usage' to check the time until your request limit resets")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A .env file may hold GITHUB_TOKEN; absence is fine.
	_ = godotenv.Load()

	viper.SetConfigName(".github-activity")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetEnvPrefix("GITHUB_ACTIVITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("page-size", pager.DefaultPageSize)
	viper.SetDefault("no-color", false)
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			errColor.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(usageCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().Int("page-size", pager.DefaultPageSize, "Number of lines per page")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		errColor.Fprintf(os.Stderr, "Error binding root flags: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		errColor.Fprintf(os.Stderr, "Error binding root flags: %v\n", err)
		os.Exit(1)
	}
}
