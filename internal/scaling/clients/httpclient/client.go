package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/r-heap47/scaling-agent/internal/pkg/errors"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/scaling"
)

const (
	// DefaultTimeout - request timeout used when Config.Timeout is nil
	DefaultTimeout = 10 * time.Second

	// maxConfigSize limits the config document read from the service
	maxConfigSize = 1 << 20
)

// Client - scaling.Client over HTTP with Basic authentication
type Client struct {
	http *http.Client

	host      string
	serviceID string
	appID     string
	username  string
	password  string

	timeout utils.Provider[time.Duration]
}

var _ scaling.Client = (*Client)(nil)

// Config - http client config
type Config struct {
	// Host - base URL of the service, e.g. https://scaling.example.com
	Host      string
	ServiceID string
	AppID     string
	Username  string
	Password  string

	// Timeout bounds every request, defaults to DefaultTimeout
	Timeout utils.Provider[time.Duration]
	// HTTPClient defaults to a fresh http.Client
	HTTPClient *http.Client
}

// New creates a Client
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	timeout := cfg.Timeout
	if timeout == nil {
		timeout = utils.Const(DefaultTimeout)
	}

	return &Client{
		http:      hc,
		host:      cfg.Host,
		serviceID: cfg.ServiceID,
		appID:     cfg.AppID,
		username:  cfg.Username,
		password:  cfg.Password,
		timeout:   timeout,
	}
}

// NotifyStatus sends PUT services/agent/status/{appId}
func (c *Client) NotifyStatus(ctx context.Context) error {
	endpoint, err := url.JoinPath(c.host, "services", "agent", "status", c.appID)
	if err != nil {
		return fmt.Errorf("url.JoinPath: %w", err)
	}

	_, err = c.do(ctx, http.MethodPut, endpoint, nil)
	return err
}

// SendReport sends POST services/agent/report
func (c *Client) SendReport(ctx context.Context, report scaling.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	endpoint, err := url.JoinPath(c.host, "services", "agent", "report")
	if err != nil {
		return fmt.Errorf("url.JoinPath: %w", err)
	}

	_, err = c.do(ctx, http.MethodPost, endpoint, body)
	return err
}

// FetchConfig sends GET v1/agent/config/{serviceId}/{appId}?appType=swift and returns the body
func (c *Client) FetchConfig(ctx context.Context) ([]byte, error) {
	endpoint, err := url.JoinPath(c.host, "v1", "agent", "config", c.serviceID, c.appID)
	if err != nil {
		return nil, fmt.Errorf("url.JoinPath: %w", err)
	}

	return c.do(ctx, http.MethodGet, endpoint+"?"+url.Values{"appType": {scaling.AppType}}.Encode(), nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout(ctx))
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close() // nolint: errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxConfigSize+1))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s %s: %w: %d", method, req.URL.Path, pkgerrors.ErrUnexpectedStatus, resp.StatusCode)
	}

	// a truncated document must not reach the parser
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%s %s: %w: more than %d bytes", method, req.URL.Path, pkgerrors.ErrBodyTooLarge, maxConfigSize)
	}

	return data, nil
}
