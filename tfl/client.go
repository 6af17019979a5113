package tfl

import (
	"context"
	"io"
	"net/http"
	"time"

	"tubestatus/data/model"

	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	TFL_API_DOMAIN   = "https://api.tfl.gov.uk"
	TUBE_STATUS_PATH = "/line/mode/tube/status"

	// DefaultTimeout bounds the single status request.
	DefaultTimeout = 15 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fetches tube line statuses from the TfL unified API.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	endpoint   string
	logger     *log.Logger
}

var errNullBody = errors.New("expected a JSON array, got null")

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout limits each request. It is applied to a copy of the http.Client,
// whichever order the options are given in.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithEndpoint replaces the full status URL.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) {
		c.endpoint = url
	}
}

func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

func NewClient(options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		endpoint:   TFL_API_DOMAIN + TUBE_STATUS_PATH,
		logger:     log.Default(),
	}
	for _, option := range options {
		option(c)
	}

	hc := http.Client{}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	hc.Timeout = c.timeout
	c.httpClient = &hc
	return c
}

// Fetch performs one GET against the status endpoint and returns the raw body.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create line status request")
	}

	c.logger.Debug("requesting line status", "url", c.endpoint)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot fetch %s", c.endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("line status response", "status", resp.StatusCode, "elapsed", time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("HTTP %d from %s", resp.StatusCode, c.endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read response from %s", c.endpoint)
	}
	return body, nil
}

// Parse decodes a status response body. The body must be a JSON array.
func Parse(body []byte) ([]model.LineStatusEntry, error) {
	var entries []model.LineStatusEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.Wrap(err, "cannot decode line status response")
	}
	if entries == nil {
		return nil, errors.Wrap(errNullBody, "cannot decode line status response")
	}
	return entries, nil
}

// LineStatuses fetches and decodes the current status of every tube line,
// in the order the API returns them.
func (c *Client) LineStatuses(ctx context.Context) ([]model.LineStatusEntry, error) {
	body, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := Parse(body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("decoded line statuses", "count", len(entries))
	return entries, nil
}
