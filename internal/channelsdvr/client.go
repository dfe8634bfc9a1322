package channelsdvr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cdvrpass/internal/config"
	"cdvrpass/internal/logging"
	"cdvrpass/internal/services"
)

const component = "channelsdvr"

// HTTPDoer describes the HTTP client used by the DVR client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a single Channels DVR server.
type Client struct {
	base   *url.URL
	client HTTPDoer
	logger *slog.Logger
}

// NewConfiguredClient returns a client for the server named in cfg, bounded
// by the configured request timeout.
func NewConfiguredClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "configure", "config is required", nil)
	}
	return NewClient(cfg.ServerURL(), &http.Client{Timeout: cfg.RequestTimeout()}, logger)
}

// NewClient constructs a client for baseURL using doer for transport.
func NewClient(baseURL string, doer HTTPDoer, logger *slog.Logger) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "configure", fmt.Sprintf("invalid server url %q", baseURL), err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, services.Wrap(services.ErrConfiguration, component, "configure", fmt.Sprintf("server url %q needs a scheme and host", baseURL), nil)
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		base:   base,
		client: doer,
		logger: logging.NewComponentLogger(logger, component),
	}, nil
}

// BaseURL returns the server URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Rules fetches every recording rule.
func (c *Client) Rules(ctx context.Context) ([]Rule, error) {
	var rules []Rule
	if err := c.getJSON(ctx, "rules", "/dvr/rules", &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Jobs fetches every scheduled job, including skipped ones.
func (c *Client) Jobs(ctx context.Context) ([]Record, error) {
	var jobs []Record
	if err := c.getJSON(ctx, "jobs", "/dvr/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Files fetches every file in the library.
func (c *Client) Files(ctx context.Context) ([]Record, error) {
	var files []Record
	if err := c.getJSON(ctx, "files", "/dvr/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

// MediaInfo fetches the media info of a library file.
func (c *Client) MediaInfo(ctx context.Context, fileID string) (MediaInfo, error) {
	var info MediaInfo
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return info, services.Wrap(services.ErrValidation, component, "mediainfo", "file id is required", nil)
	}
	path := "/dvr/files/" + url.PathEscape(fileID) + "/mediainfo.json"
	if err := c.getJSON(ctx, "mediainfo", path, &info); err != nil {
		return MediaInfo{}, err
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, operation, path string, dst any) error {
	endpoint := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, component, operation, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return services.Wrap(services.ErrTimeout, component, operation, "request timed out", err)
		}
		return services.Wrap(services.ErrTransient, component, operation, "request failed", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "dvr request completed",
		slog.String("url", endpoint.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		message := fmt.Sprintf("%s returned %d", path, resp.StatusCode)
		if body := strings.TrimSpace(string(snippet)); body != "" {
			message += ": " + body
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return services.Wrap(services.ErrNotFound, component, operation, message, nil)
		case resp.StatusCode >= http.StatusInternalServerError:
			return services.Wrap(services.ErrTransient, component, operation, message, nil)
		default:
			return services.Wrap(services.ErrValidation, component, operation, message, nil)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return services.Wrap(services.ErrValidation, component, operation, "decode response", err)
	}
	return nil
}

func isTimeout(err error) bool {
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
