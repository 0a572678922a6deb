package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// RetryOptions bound the automatic retries of a [HTTPClient]. A zero
// RetryCount disables retries.
type RetryOptions struct {
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

// NewHTTPClient creates a resty client that encodes and decodes JSON with
// goccy/go-json and retries according to opts. Retry conditions are added
// by the caller with AddRetryCondition.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.RetryOptions{RetryCount: 3})
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient(opts RetryOptions) *HTTPClient {
	c := resty.New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount)
		if opts.RetryWaitTime > 0 {
			c.SetRetryWaitTime(opts.RetryWaitTime)
		}
		if opts.RetryMaxWaitTime > 0 {
			c.SetRetryMaxWaitTime(opts.RetryMaxWaitTime)
		}
	}

	return &HTTPClient{Client: c}
}
