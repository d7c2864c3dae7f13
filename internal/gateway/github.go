// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// probeTimeout bounds the TCP reachability check before any API call.
const probeTimeout = 5 * time.Second

// defaultProbeAddr is a well-known public resolver used only to verify
// that the network is reachable at all.
const defaultProbeAddr = "8.8.8.8:53"

// Fetcher defines the behavior of a gateway for fetching a user's
// public activity and the remaining API quota.
type Fetcher interface {
	FetchEvents(ctx context.Context, username string) ([]domain.RawEvent, error)
	RateLimit(ctx context.Context) (domain.RateInfo, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client    *github.Client
	logger    *log.Logger
	probeAddr string
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token is optional; without one, requests run unauthenticated
// against the public API and share its lower rate limit.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	httpClient := &http.Client{Transport: rateLimitWaiter}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}

	return &GitHubGateway{
		client:    github.NewClient(httpClient),
		logger:    logger,
		probeAddr: defaultProbeAddr,
	}, nil
}

// checkConnectivity probes a well-known address so that an offline
// machine fails fast with a clear message instead of a slow API timeout.
// An empty probeAddr disables the probe.
func (g *GitHubGateway) checkConnectivity() error {
	if g.probeAddr == "" {
		return nil
	}
	conn, err := net.DialTimeout("tcp", g.probeAddr, probeTimeout)
	if err != nil {
		return fmt.Errorf("unable to connect to GitHub, please check your network connection: %w", err)
	}
	_ = conn.Close()
	return nil
}

// eventPayload is the subset of the event payload that aggregation needs.
type eventPayload struct {
	Size        *int   `json:"size"`
	RefType     string `json:"ref_type"`
	Ref         string `json:"ref"`
	PullRequest *struct {
		ID *int64 `json:"id"`
	} `json:"pull_request"`
}

// FetchEvents lists the user's public activity feed and maps each item
// to a domain.RawEvent. A 404 from the API becomes ErrAccountNotFound.
func (g *GitHubGateway) FetchEvents(ctx context.Context, username string) ([]domain.RawEvent, error) {
	if err := g.checkConnectivity(); err != nil {
		return nil, err
	}

	g.logger.Printf("Gateway: Fetching public events for %s...\n", username)
	opts := &github.ListOptions{PerPage: 100}
	ghEvents, _, err := g.client.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch user events: %w", err)
	}

	events := make([]domain.RawEvent, 0, len(ghEvents))
	for _, ev := range ghEvents {
		raw := domain.RawEvent{
			Type:     ev.GetType(),
			RepoName: ev.GetRepo().GetName(),
		}
		if ev.CreatedAt != nil {
			raw.CreatedAt = ev.GetCreatedAt().UTC().Format(domain.TimestampLayout)
		}
		if payload := ev.GetRawPayload(); len(payload) > 0 {
			var p eventPayload
			if err := json.Unmarshal(payload, &p); err != nil {
				return nil, fmt.Errorf("failed to parse event payload: %w", err)
			}
			raw.PayloadSize = p.Size
			raw.RefType = p.RefType
			raw.Ref = p.Ref
			if p.PullRequest != nil {
				raw.PullRequestID = p.PullRequest.ID
			}
		}
		events = append(events, raw)
	}

	g.logger.Printf("Gateway: Fetched %d events.\n", len(events))
	return events, nil
}

// RateLimit reads the core REST rate limit numbers for the client.
func (g *GitHubGateway) RateLimit(ctx context.Context) (domain.RateInfo, error) {
	if err := g.checkConnectivity(); err != nil {
		return domain.RateInfo{}, err
	}

	limits, _, err := g.client.RateLimit.Get(ctx)
	if err != nil {
		return domain.RateInfo{}, fmt.Errorf("failed to fetch rate limit: %w", err)
	}
	core := limits.GetCore()
	if core == nil {
		return domain.RateInfo{}, errors.New("rate limit data not found in API response")
	}

	return domain.RateInfo{
		Used:      core.Limit - core.Remaining,
		Remaining: core.Remaining,
		Limit:     core.Limit,
		ResetAt:   core.Reset.Time,
	}, nil
}
