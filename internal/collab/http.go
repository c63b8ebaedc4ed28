package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPSyncEngine calls a remote sync service.
type HTTPSyncEngine struct {
	BaseURL string
	hc      *http.Client
}

func NewHTTPSyncEngine(baseURL string) *HTTPSyncEngine {
	return &HTTPSyncEngine{
		BaseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *HTTPSyncEngine) SyncAll(ctx context.Context, userID string) (SyncReport, error) {
	var report SyncReport
	err := postJSON(ctx, e.hc, strings.TrimRight(e.BaseURL, "/")+"/sync/all",
		map[string]string{"userId": userID}, &report)
	return report, err
}

// HTTPOptimizer calls a remote resume-optimizer service.
type HTTPOptimizer struct {
	BaseURL string
	hc      *http.Client
}

func NewHTTPOptimizer(baseURL string) *HTTPOptimizer {
	return &HTTPOptimizer{
		BaseURL: baseURL,
		hc:      &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *HTTPOptimizer) OptimizeResume(ctx context.Context, req OptimizeRequest) (OptimizeResponse, error) {
	var resp OptimizeResponse
	err := postJSON(ctx, o.hc, strings.TrimRight(o.BaseURL, "/")+"/optimize", req, &resp)
	return resp, err
}

func postJSON(ctx context.Context, hc *http.Client, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return fmt.Errorf("collaborator status %d from %s", res.StatusCode, url)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
