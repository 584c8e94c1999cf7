package seedrecords

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Stats counts submission outcomes for one run.
type Stats struct {
	Submitted int
	Failed    int
}

// Run generates count records and submits them sequentially to the
// service at baseURL. Failures are counted, not fatal; the first
// transport-level error aborts the run since the service is likely down.
func Run(ctx context.Context, baseURL string, count int, timeout time.Duration) (Stats, error) {
	client := &http.Client{Timeout: timeout}
	url := baseURL + "/records"

	var stats Stats
	for _, rec := range Generate(count) {
		body, err := json.Marshal(rec)
		if err != nil {
			return stats, fmt.Errorf("marshal record: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return stats, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return stats, fmt.Errorf("submit record: %w", err)
		}
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			stats.Submitted++
		} else {
			stats.Failed++
		}
	}
	return stats, nil
}
