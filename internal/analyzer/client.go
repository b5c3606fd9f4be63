// Package analyzer wraps the remote video-analysis service. The service is
// a black box reached over HTTP: one multipart POST per attempt, no retries.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/streameme/streameme/internal/domain"
)

// payloadErrorMarker is the substring the service puts in its error body
// when it rejects an oversized payload.
const payloadErrorMarker = "Payload error"

// Config holds configuration for the analysis client.
type Config struct {
	// Endpoint is the full upload URL of the analysis service.
	Endpoint string
	// Mode is the fixed analysis mode flag sent in the metadata part.
	Mode int
	// Timeout bounds one upload round-trip. Large payloads take minutes.
	Timeout time.Duration
}

// Client submits video files to the analysis service and decodes its
// responses.
type Client struct {
	http     *resty.Client
	endpoint string
	mode     int
}

// NewClient creates an analysis client.
// Parameters:
//   - cfg: endpoint, mode flag, and round-trip timeout.
//
// Returns:
//   - *Client: initialized client wrapper.
func NewClient(cfg *Config) *Client {
	client := resty.New()
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	client.SetTimeout(timeout)

	return &Client{
		http:     client,
		endpoint: cfg.Endpoint,
		mode:     cfg.Mode,
	}
}

// Analyze uploads one video and returns the raw analysis response.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - fileName: original name of the video file.
//   - file: video bytes.
//
// Returns:
//   - *Response: decoded service output on HTTP success.
//   - error: wraps domain.ErrPayloadTooLarge when the service reports an
//     oversized payload, domain.ErrUploadFailed for every other failure.
func (c *Client) Analyze(ctx context.Context, fileName string, file io.Reader) (*Response, error) {
	metadata, err := json.Marshal(map[string]int{"mode": c.mode})
	if err != nil {
		return nil, fmt.Errorf("%w: encode metadata: %v", domain.ErrUploadFailed, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("metadata", "", "application/json", strings.NewReader(string(metadata))).
		SetMultipartField("file", fileName, "application/octet-stream", file).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	if !resp.IsSuccess() {
		return nil, classifyError(resp.StatusCode(), resp.Body())
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUploadFailed, err)
	}
	return &out, nil
}

// classifyError maps a non-2xx response onto the error taxonomy. Non-JSON
// bodies are tolerated and yield the generic failure.
func classifyError(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		if strings.Contains(eb.Error, payloadErrorMarker) {
			return fmt.Errorf("%w: %s", domain.ErrPayloadTooLarge, eb.Error)
		}
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrUploadFailed, status, eb.Error)
	}
	return fmt.Errorf("%w: HTTP %d", domain.ErrUploadFailed, status)
}
