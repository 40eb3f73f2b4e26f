// Package dataapi fetches the raw collections from the portal data API.
// The data API owns persistence, auth, and validation; this client only
// issues reads and tolerates partial availability.
package dataapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/contentcrush/portalcc-sub007/app/calendar"
)

// Snapshot is one concurrent read of the five upstream collections.
// Collections that failed to load are empty, not nil-checked errors: the
// calendar pipeline degrades gracefully on partial data.
type Snapshot struct {
	ID        string    `json:"id"`
	FetchedAt time.Time `json:"fetched_at"`
	Data      calendar.Dataset
}

// Client talks to the portal data API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a data API client. The token, when non-empty, is forwarded
// as a bearer token on every request.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchSnapshot reads all five collections concurrently. The fetches are
// independent, unordered reads with no transactional relationship; a
// failed collection is logged and left empty. An error is returned only
// when every collection failed, since an all-empty snapshot would hide an
// unreachable upstream.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ID: uuid.NewString(), FetchedAt: time.Now()}

	var wg sync.WaitGroup
	errs := make([]error, 5)

	fetch := func(i int, path string, out any) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.getCollection(ctx, path, out); err != nil {
				log.Printf("Failed to fetch %s: %v", path, err)
				errs[i] = err
			}
		}()
	}

	fetch(0, "/api/events", &snap.Data.Events)
	fetch(1, "/api/tasks", &snap.Data.Tasks)
	fetch(2, "/api/projects", &snap.Data.Projects)
	fetch(3, "/api/clients", &snap.Data.Clients)
	fetch(4, "/api/users", &snap.Data.Users)
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(errs) {
		return nil, fmt.Errorf("data API unreachable: all collections failed (first error: %w)", firstError(errs))
	}
	return snap, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) getCollection(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeCollection(body, out)
}

// decodeCollection accepts either a bare JSON array or an envelope such
// as {"success": true, "data": [...]}. Some deployments of the data API
// key the envelope by resource name instead of "data", so as a last
// resort the first array-valued field wins.
func decodeCollection(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("response is neither an array nor an object: %w", err)
	}

	if data, ok := envelope["data"]; ok {
		return json.Unmarshal(data, out)
	}
	for key, raw := range envelope {
		if len(raw) > 0 && raw[0] == '[' {
			if err := json.Unmarshal(raw, out); err == nil {
				return nil
			}
			return fmt.Errorf("field %q is not the expected collection", key)
		}
	}
	return fmt.Errorf("no collection found in response envelope")
}
