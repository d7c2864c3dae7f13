package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/github-activity/internal/domain"
	"github.com/naka-gawa/github-activity/internal/gateway"
)

// Feed is the use case for assembling a user's activity feed.
// It orchestrates quota checking, fetching, aggregation and formatting.
type Feed struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewFeed creates a new Feed instance.
func NewFeed(fetcher gateway.Fetcher, logger *log.Logger) *Feed {
	return &Feed{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Lines fetches the user's activity and assembles it into display lines.
// The filter token is validated before any API request is made, so an
// invalid token never spends quota. An exhausted quota, a missing
// account, an empty feed and a filtered-to-nothing feed each surface as
// their own error.
func (f *Feed) Lines(ctx context.Context, username, filterToken string) ([]string, error) {
	if filterToken != "" {
		if domain.ParseFilter(filterToken) == domain.CategoryNone {
			return nil, &domain.InvalidFilterError{Token: filterToken}
		}
	}

	f.logger.Println("Usecase: Checking remaining API quota...")
	rate, err := f.fetcher.RateLimit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if rate.Remaining < 1 {
		return nil, domain.ErrQuotaExhausted
	}

	f.logger.Printf("Usecase: Fetching activity for user %s...\n", username)
	events, err := f.fetcher.FetchEvents(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrNoData
	}

	lines, err := BuildFeed(events, filterToken)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		filter := "All"
		if filterToken != "" {
			filter = filterToken
		}
		return nil, &domain.NoContentError{Filter: filter}
	}

	f.logger.Printf("Usecase: Assembled %d display lines.\n", len(lines))
	return lines, nil
}

// BuildFeed turns raw events and an optional filter token into ordered
// display lines: a header per date, the messages for that date, then one
// blank separator. Dates whose messages were all suppressed are omitted.
// The function is pure; calling it twice with the same input yields
// identical output.
func BuildFeed(events []domain.RawEvent, filterToken string) ([]string, error) {
	filter := domain.Category("")
	if filterToken != "" {
		filter = domain.ParseFilter(filterToken)
		if filter == domain.CategoryNone {
			return nil, &domain.InvalidFilterError{Token: filterToken}
		}
	}

	buckets, err := Aggregate(events)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]string)
	var dateOrder []string

	for _, bucket := range buckets {
		for _, cat := range domain.Categories {
			count := bucket.Counts[cat]
			if count == 0 {
				continue
			}
			if filter != "" && cat != filter {
				continue
			}

			var ref *domain.RefInfo
			if r, ok := bucket.Refs[cat]; ok {
				ref = &r
			}
			msg := domain.FormatMessage(cat, count, bucket.Key.RepoName, ref)
			if msg == "" {
				continue
			}

			if _, seen := byDate[bucket.Key.Date]; !seen {
				dateOrder = append(dateOrder, bucket.Key.Date)
			}
			byDate[bucket.Key.Date] = append(byDate[bucket.Key.Date], msg)
		}
	}

	var lines []string
	for _, date := range dateOrder {
		lines = append(lines, date)
		lines = append(lines, byDate[date]...)
		lines = append(lines, "")
	}
	return lines, nil
}
