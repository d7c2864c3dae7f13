// Package usecase contains the business logic of the application.
package usecase

import (
	"fmt"
	"time"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// GroupKey identifies one aggregation bucket: all events for one
// repository on one calendar day.
type GroupKey struct {
	Date     string
	RepoName string
}

// Bucket accumulates per-category counts for one GroupKey, plus the last
// seen branch/repository reference per Create/Delete category.
type Bucket struct {
	Key    GroupKey
	Counts map[domain.Category]int
	Refs   map[domain.Category]domain.RefInfo
}

// Aggregate groups raw events by (date, repository) and accumulates
// per-category counts. Buckets come back in first-seen order. Events
// missing a repository name or timestamp are dropped silently; a
// timestamp that is present but unparseable aborts the whole batch,
// since it signals an upstream contract violation rather than a gap.
func Aggregate(events []domain.RawEvent) ([]*Bucket, error) {
	buckets := make(map[GroupKey]*Bucket)
	var order []*Bucket

	for _, ev := range events {
		if ev.RepoName == "" || ev.CreatedAt == "" {
			continue
		}

		ts, err := time.Parse(domain.TimestampLayout, ev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event timestamp %q: %w", ev.CreatedAt, err)
		}

		key := GroupKey{Date: ts.Format(domain.DateLayout), RepoName: ev.RepoName}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &Bucket{
				Key:    key,
				Counts: make(map[domain.Category]int, len(domain.Categories)),
				Refs:   make(map[domain.Category]domain.RefInfo),
			}
			for _, cat := range domain.Categories {
				bucket.Counts[cat] = 0
			}
			buckets[key] = bucket
			order = append(order, bucket)
		}

		// Push events report their commit count as the payload size;
		// everything else counts as a single action. A pull-request
		// payload also carries a size field, so its presence wins.
		increment := 1
		if ev.PullRequestID == nil && ev.PayloadSize != nil {
			increment = *ev.PayloadSize
		}

		cat := domain.Category(ev.Type)
		bucket.Counts[cat] += increment

		if cat == domain.CategoryCreate || cat == domain.CategoryDelete {
			bucket.Refs[cat] = domain.RefInfo{Name: ev.Ref, Type: ev.RefType}
		}
	}

	return order, nil
}
