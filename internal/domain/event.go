// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Category is the raw GitHub event type tag used throughout aggregation
// and formatting. The values match the API's event type strings directly.
type Category string

// All event categories the tool understands.
const (
	CategoryPush        Category = "PushEvent"
	CategoryPullRequest Category = "PullRequestEvent"
	CategoryStar        Category = "WatchEvent"
	CategoryIssues      Category = "IssuesEvent"
	CategoryFork        Category = "ForkEvent"
	CategoryDelete      Category = "DeleteEvent"
	CategoryComment     Category = "IssueCommentEvent"
	CategoryCreate      Category = "CreateEvent"

	// CategoryNone marks a filter token that matched no known category.
	CategoryNone Category = "NoEvent"
)

// Categories lists every known category in the fixed order used when
// assembling feed output. Iteration over this slice, not over maps,
// keeps the output deterministic.
var Categories = []Category{
	CategoryPush,
	CategoryPullRequest,
	CategoryStar,
	CategoryIssues,
	CategoryFork,
	CategoryDelete,
	CategoryComment,
	CategoryCreate,
}

// TimestampLayout is the fixed timestamp format of the events API.
const TimestampLayout = "2006-01-02T15:04:05Z"

// DateLayout is the human-readable date used for group headers.
const DateLayout = "January 02, 2006"

// RawEvent is one item from the user's public activity feed, reduced to
// the fields aggregation cares about. Optional payload fields are nil
// when the API response did not carry them.
type RawEvent struct {
	Type          string
	CreatedAt     string
	RepoName      string
	PayloadSize   *int
	RefType       string
	Ref           string
	PullRequestID *int64
}

// RefInfo records the branch or repository reference seen on a Create or
// Delete event, used only for phrasing the corresponding message.
type RefInfo struct {
	Name string
	Type string
}

// RateInfo holds the core REST rate limit numbers for the current window.
type RateInfo struct {
	Used      int
	Remaining int
	Limit     int
	ResetAt   time.Time
}
