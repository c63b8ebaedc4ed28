package sponsors

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/webutil"
)

type Config struct {
	BaseURL       string
	MaxCandidates int // cap on downstream fan-out; 20 when unset
}

// Registry scrapes the public H-1B sponsor registry search page. The
// registry has no JSON API, so we parse its results table.
type Registry struct {
	cfg     Config
	hc      *http.Client
	limiter *webutil.HostLimiter
	log     *zap.Logger
}

func NewRegistry(cfg Config, limiter *webutil.HostLimiter, log *zap.Logger) *Registry {
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 20
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		log:     log,
	}
}

// Discover returns employers sponsoring roles matching roleKeyword,
// deduplicated by company name and capped to MaxCandidates.
func (r *Registry) Discover(ctx context.Context, roleKeyword string) ([]domain.SponsorCandidate, error) {
	searchURL := fmt.Sprintf("%s/search?role=%s", strings.TrimRight(r.cfg.BaseURL, "/"), url.QueryEscape(roleKeyword))

	if r.limiter != nil {
		if err := r.limiter.WaitURL(ctx, searchURL); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	req.Header.Set("User-Agent", "SponsorScout/1.0 (+local)")

	res, err := r.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sponsor registry get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("sponsor registry status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("sponsor registry parse: %w", err)
	}

	seen := map[string]bool{}
	var out []domain.SponsorCandidate

	doc.Find("table.sponsors tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		name := webutil.CleanText(row.Find("td.company").First().Text())
		if name == "" {
			return true
		}
		key := strings.ToLower(name)
		if seen[key] {
			return true
		}
		seen[key] = true

		cand := domain.SponsorCandidate{
			CompanyName:    name,
			TotalPositions: parseInt(row.Find("td.positions").First().Text()),
			AvgWage:        parseWage(row.Find("td.avg-wage").First().Text()),
		}

		row.Find("ul.roles li").Each(func(_ int, li *goquery.Selection) {
			title := webutil.CleanText(li.Text())
			if title == "" {
				return
			}
			wage := parseWage(li.AttrOr("data-wage", ""))
			cand.Roles = append(cand.Roles, domain.SponsorRole{Title: title, Wage: wage})
		})

		out = append(out, cand)
		return len(out) < r.cfg.MaxCandidates
	})

	r.log.Debug("sponsor discovery parsed",
		zap.String("role", roleKeyword),
		zap.Int("candidates", len(out)),
	)
	return out, nil
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(webutil.CleanText(s)))
	return n
}

// parseWage tolerates "$145,000" as well as bare numbers.
func parseWage(s string) float64 {
	s = webutil.CleanText(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
