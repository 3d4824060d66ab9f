package evaldata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultSource is the dataset location used when none is configured.
const DefaultSource = "data/query_scores_optimized.json"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// LoadError reports a failed dataset load: the fetch itself, a non-2xx
// response, or an unparseable payload. Status is zero for non-HTTP failures.
type LoadError struct {
	Source  string
	Status  int
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load %s: HTTP %d: %s", e.Source, e.Status, e.Message)
	}
	return fmt.Sprintf("load %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the dataset from an http(s) URL or a local file.
// It does not retry; recovery is a caller-driven full reload.
func Load(ctx context.Context, source string) (*Dataset, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultSource
	}

	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = &LoadError{Source: source, Message: err.Error(), Err: err}
		}
	}
	if err != nil {
		return nil, err
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &LoadError{Source: source, Message: "invalid dataset JSON: " + err.Error(), Err: err}
	}
	return &ds, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Source: url, Message: err.Error(), Err: err}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &LoadError{Source: url, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{
			Source:  url,
			Status:  resp.StatusCode,
			Message: resp.Status,
			Err:     errors.New(resp.Status),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: url, Message: err.Error(), Err: err}
	}
	return data, nil
}
