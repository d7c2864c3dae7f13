package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-activity/internal/domain"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name        string
		events      []domain.RawEvent
		check       func(t *testing.T, buckets []*Bucket)
		expectError bool
	}{
		{
			name: "push event counts by payload size",
			events: []domain.RawEvent{
				{Type: "PushEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b", PayloadSize: intPtr(3)},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				assert.Equal(t, GroupKey{Date: "January 01, 2024", RepoName: "a/b"}, buckets[0].Key)
				assert.Equal(t, 3, buckets[0].Counts[domain.CategoryPush])
			},
		},
		{
			name: "event without payload size counts as one",
			events: []domain.RawEvent{
				{Type: "WatchEvent", CreatedAt: "2024-01-01T12:00:00Z", RepoName: "a/b"},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				assert.Equal(t, 1, buckets[0].Counts[domain.CategoryStar])
			},
		},
		{
			name: "pull request event counts as one even with a payload size",
			events: []domain.RawEvent{
				{Type: "PullRequestEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b", PayloadSize: intPtr(7), PullRequestID: int64Ptr(42)},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				assert.Equal(t, 1, buckets[0].Counts[domain.CategoryPullRequest])
			},
		},
		{
			name: "events without repo name or timestamp are dropped",
			events: []domain.RawEvent{
				{Type: "PushEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: ""},
				{Type: "PushEvent", CreatedAt: "", RepoName: "a/b"},
				{Type: "PushEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b", PayloadSize: intPtr(2)},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				assert.Equal(t, 2, buckets[0].Counts[domain.CategoryPush])
			},
		},
		{
			name: "same repo on different days forms separate buckets",
			events: []domain.RawEvent{
				{Type: "PushEvent", CreatedAt: "2024-01-01T23:59:59Z", RepoName: "a/b", PayloadSize: intPtr(1)},
				{Type: "PushEvent", CreatedAt: "2024-01-02T00:00:01Z", RepoName: "a/b", PayloadSize: intPtr(1)},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 2)
				assert.Equal(t, "January 01, 2024", buckets[0].Key.Date)
				assert.Equal(t, "January 02, 2024", buckets[1].Key.Date)
			},
		},
		{
			name: "buckets preserve first-seen order",
			events: []domain.RawEvent{
				{Type: "WatchEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "z/z"},
				{Type: "WatchEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/a"},
				{Type: "ForkEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "z/z"},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 2)
				assert.Equal(t, "z/z", buckets[0].Key.RepoName)
				assert.Equal(t, "a/a", buckets[1].Key.RepoName)
				assert.Equal(t, 1, buckets[0].Counts[domain.CategoryStar])
				assert.Equal(t, 1, buckets[0].Counts[domain.CategoryFork])
			},
		},
		{
			name: "create and delete references use last write wins per category",
			events: []domain.RawEvent{
				{Type: "CreateEvent", CreatedAt: "2024-02-02T00:00:00Z", RepoName: "a/b", RefType: "branch", Ref: "first"},
				{Type: "CreateEvent", CreatedAt: "2024-02-02T01:00:00Z", RepoName: "a/b", RefType: "branch", Ref: "second"},
				{Type: "DeleteEvent", CreatedAt: "2024-02-02T02:00:00Z", RepoName: "a/b", RefType: "branch", Ref: "gone"},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				assert.Equal(t, domain.RefInfo{Name: "second", Type: "branch"}, buckets[0].Refs[domain.CategoryCreate])
				assert.Equal(t, domain.RefInfo{Name: "gone", Type: "branch"}, buckets[0].Refs[domain.CategoryDelete])
				assert.Equal(t, 2, buckets[0].Counts[domain.CategoryCreate])
				assert.Equal(t, 1, buckets[0].Counts[domain.CategoryDelete])
			},
		},
		{
			name: "new bucket starts with all known categories at zero",
			events: []domain.RawEvent{
				{Type: "ForkEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b"},
			},
			check: func(t *testing.T, buckets []*Bucket) {
				require.Len(t, buckets, 1)
				for _, cat := range domain.Categories {
					_, ok := buckets[0].Counts[cat]
					assert.True(t, ok, "category %s should be initialized", cat)
				}
			},
		},
		{
			name: "unparseable timestamp aborts the batch",
			events: []domain.RawEvent{
				{Type: "PushEvent", CreatedAt: "01/01/2024", RepoName: "a/b"},
			},
			expectError: true,
		},
		{
			name:   "empty input yields no buckets",
			events: nil,
			check: func(t *testing.T, buckets []*Bucket) {
				assert.Empty(t, buckets)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buckets, err := Aggregate(tc.events)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, buckets)
				return
			}
			assert.NoError(t, err)
			tc.check(t, buckets)
		})
	}
}

func TestAggregateCountSum(t *testing.T) {
	// The sum of all counts in a bucket equals the events adjusted for
	// size-less and pull-request events counted as one each.
	events := []domain.RawEvent{
		{Type: "PushEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b", PayloadSize: intPtr(5)},
		{Type: "WatchEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b"},
		{Type: "PullRequestEvent", CreatedAt: "2024-01-01T00:00:00Z", RepoName: "a/b", PayloadSize: intPtr(9), PullRequestID: int64Ptr(1)},
	}

	buckets, err := Aggregate(events)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	total := 0
	for _, count := range buckets[0].Counts {
		total += count
	}
	assert.Equal(t, 5+1+1, total)
}
