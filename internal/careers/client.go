package careers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/webutil"
)

// MultiBatchLimit caps SearchMultiple fan-out per call.
const MultiBatchLimit = 10

type Config struct {
	BaseURL string
	Token   string // optional bearer token, loaded from the keyring
}

// Client talks to the postings search API. Responses are lever-shaped
// JSON; requirement lists missing from the payload are recovered from the
// description's HTML list items.
type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *webutil.HostLimiter
	log     *zap.Logger
}

func New(cfg Config, limiter *webutil.HostLimiter, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		log:     log,
	}
}

type apiPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"` // html
	Requirements []string `json:"requirements"`
}

func (c *Client) Search(ctx context.Context, company, query, location string) ([]domain.JobPosting, error) {
	q := url.Values{}
	q.Set("company", company)
	q.Set("q", query)
	if location != "" {
		q.Set("location", location)
	}
	apiURL := fmt.Sprintf("%s/v1/postings?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	req.Header.Set("User-Agent", "SponsorScout/1.0 (+local)")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("careers get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("careers status %d for %q", res.StatusCode, company)
	}

	var raw []apiPosting
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("careers decode: %w", err)
	}

	out := make([]domain.JobPosting, 0, len(raw))
	for _, p := range raw {
		if p.ID == "" || strings.TrimSpace(p.Title) == "" {
			continue
		}
		co := p.Company
		if co == "" {
			co = company
		}
		reqs := p.Requirements
		if len(reqs) == 0 {
			reqs = ExtractRequirements(p.Description)
		}
		out = append(out, domain.JobPosting{
			ID:           p.ID,
			Title:        strings.TrimSpace(p.Title),
			Company:      co,
			Location:     webutil.CleanText(p.Location),
			Description:  p.Description,
			Requirements: reqs,
		})
	}

	c.log.Debug("careers search",
		zap.String("company", company),
		zap.Int("postings", len(out)),
	)
	return out, nil
}

func (c *Client) SearchMultiple(ctx context.Context, companies []string, query, location string) (map[string]CompanyResult, error) {
	if len(companies) > MultiBatchLimit {
		return nil, fmt.Errorf("searchMultiple accepts at most %d companies, got %d", MultiBatchLimit, len(companies))
	}

	var mu sync.Mutex
	results := make(map[string]CompanyResult, len(companies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, co := range companies {
		co := co
		g.Go(func() error {
			postings, err := c.Search(gctx, co, query, location)
			mu.Lock()
			results[co] = CompanyResult{Postings: postings, Err: err}
			mu.Unlock()
			return nil // per-company failure stays per-company
		})
	}
	_ = g.Wait()

	return results, nil
}
