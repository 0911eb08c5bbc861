package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StatusError is returned for responses outside the 200-399 range.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: bad status: %s", e.URL, e.Status)
}

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{client: &http.Client{Timeout: timeout}, baseURL: baseURL}
}

// Get decodes the JSON response of path into v.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := a.do(ctx, path, params, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// GetText returns the response body of path verbatim.
func (a *API) GetText(ctx context.Context, path string, params url.Values) (string, error) {
	resp, err := a.do(ctx, path, params, "text/html")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(body), nil
}

func (a *API) do(ctx context.Context, path string, params url.Values, accept string) (*http.Response, error) {
	if params != nil {
		path += "?" + params.Encode()
	}
	u := fmt.Sprintf("%s%s", a.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, &StatusError{URL: u, Status: resp.Status, Code: resp.StatusCode}
	}
	return resp, nil
}
