package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// header is a single request header applied to every call of a backend.
type header struct {
	name  string
	value string
}

// newRequest builds a JSON POST request.
func newRequest(ctx context.Context, baseURL, path string, payload any, auth header) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(baseURL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth.value != "" {
		req.Header.Set(auth.name, auth.value)
	}
	return req, nil
}

// postJSON sends payload to path and decodes the JSON answer into out.
func postJSON(ctx context.Context, client *http.Client, service, baseURL, path string, auth header, payload, out any) error {
	req, err := newRequest(ctx, baseURL, path, payload, auth)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return transportError(service, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusError(service, path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.ExternalServiceError(service, fmt.Errorf("decode %s response: %w", path, err))
	}
	return nil
}

func transportError(service, path string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.ErrCodeAPITimeout, fmt.Sprintf("%s %s timed out", service, path)).
			WithDetail("service", service)
	}
	return apperrors.ExternalServiceError(service, fmt.Errorf("%s request: %w", path, err))
}

func statusError(service, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	var err error
	if msg == "" {
		err = fmt.Errorf("%s status: %s", path, resp.Status)
	} else {
		err = fmt.Errorf("%s status: %s: %s", path, resp.Status, msg)
	}
	return apperrors.ExternalServiceError(service, err).WithDetail("status", resp.StatusCode)
}
