// internal/github/client.go
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

const (
	// DefaultTimeout bounds a single listing request.
	DefaultTimeout = 30 * time.Second

	// maxPerPage is the largest page GitHub serves; only the first page is requested.
	maxPerPage = 100
)

// Client is a wrapper around the go-github client.
// go-github remembers rate limit state per client and answers later calls from it
// without a request, so a fresh github.Client is built for every listing.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*options)

type options struct {
	baseURL string
	timeout time.Duration
}

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewClient creates and configures a new Client instance.
// An empty token results in unauthenticated requests, which is enough for public repositories.
func NewClient(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = o.timeout

	c := &Client{
		httpClient: httpClient,
		logger:     logger,
	}
	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parse github base url: %w", err)
		}
		c.baseURL = u
	}
	return c, nil
}

func (c *Client) newGithub() *github.Client {
	gh := github.NewClient(c.httpClient)
	if c.baseURL != nil {
		u := *c.baseURL
		gh.BaseURL = &u
	}
	return gh
}

// ListRepositories fetches the most recently updated repositories owned by account.
// Only a single page of up to 100 repositories is requested and nothing is cached.
// A non-success response is reported as *custom_errors.ErrUpstreamStatus.
func (c *Client) ListRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type: "owner",
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: maxPerPage,
		},
	}

	c.logger.Debug("Fetching repositories", "account", account)

	repos, resp, err := c.newGithub().Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		if status := statusCode(resp, err); status != 0 {
			return nil, &custom_errors.ErrUpstreamStatus{StatusCode: status}
		}
		return nil, err
	}

	result := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, toInternalRepository(r))
	}
	c.logger.Debug("Fetched repositories", "account", account, "count", len(result))
	return result, nil
}

// statusCode extracts the HTTP status of a failed upstream call, or 0 for transport-level failures.
func statusCode(resp *github.Response, err error) int {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return resp.StatusCode
	}
	return 0
}

// toInternalRepository translates a github.Repository object to our internal model.Repository.
func toInternalRepository(r *github.Repository) model.Repository {
	return model.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Homepage:    r.GetHomepage(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Topics:      r.Topics,
		UpdatedAt:   r.GetUpdatedAt().Time,
		Fork:        r.GetFork(),
		Private:     r.GetPrivate(),
	}
}
