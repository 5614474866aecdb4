// Package recreation talks to Recreation.gov: the RIDB API for recreation areas,
// campgrounds and campsites, and the booking site's availability API.
package recreation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"campwatch/config"

	"github.com/pkg/errors"
)

// ErrUnexpectedStatus is wrapped by errors returned for non-2xx upstream responses.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// Client implements both service.SearchProvider and service.AvailabilityProvider.
type Client struct {
	ridbBaseURL         string
	availabilityBaseURL string
	apiKey              string
	userAgent           string
	pageSize            int
	maxPages            int
	httpClient          *http.Client
	logger              *slog.Logger
}

// NewClient builds a client from the recreationGov config section.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	rg := cfg.RecreationGov

	userAgent := rg.UserAgent
	if userAgent == "" {
		userAgent = "campwatch/" + versionOrDefault(cfg.Env.Version)
	}

	return &Client{
		ridbBaseURL:         strings.TrimRight(rg.RIDBBaseURL, "/"),
		availabilityBaseURL: strings.TrimRight(rg.AvailabilityBaseURL, "/"),
		apiKey:              rg.APIKey,
		userAgent:           userAgent,
		pageSize:            rg.PageSize,
		maxPages:            rg.MaxPages,
		httpClient: &http.Client{
			Timeout: rg.Timeout,
		},
		logger: logger,
	}
}

func versionOrDefault(version string) string {
	if version == "" {
		return "dev"
	}

	return version
}

// ridbID decodes RIDB identifiers, which arrive as either JSON strings or numbers.
type ridbID int64

func (id *ridbID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*id = 0

		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid RIDB id %q", s)
	}
	*id = ridbID(v)

	return nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, withAPIKey bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if withAPIKey && c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", redactURL(rawURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return errors.Wrapf(ErrUnexpectedStatus, "GET %s returned %d", redactURL(rawURL), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode response of %s", redactURL(rawURL))
	}

	return nil
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""

	return parsed.String()
}
