package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/pkg/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var siteURLPattern = regexp.MustCompile(`^https?://([^/]+)/sites/([^/?#]+)`)

// Client talks to Microsoft Graph with an app-only token.
// It serves the SharePoint document library and Outlook mail.
type Client struct {
	http    *http.Client
	baseURL string
	siteURL string
	cfg     config.GraphConfig
	logger  *slog.Logger

	siteMu sync.Mutex
	siteID string
}

// NewClient builds a Graph client. base may be nil; it is used for both the token endpoint and API calls.
func NewClient(cfg config.GraphConfig, base *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.SiteID == "" && !siteURLPattern.MatchString(cfg.SiteURL) {
		return nil, fmt.Errorf("invalid SharePoint site URL %q", cfg.SiteURL)
	}
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     strings.TrimRight(cfg.AuthorityURL, "/") + "/" + cfg.TenantID + "/oauth2/v2.0/token",
		Scopes:       []string{cfg.Scope},
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: cc.TokenSource(tokenCtx),
				Base:   base.Transport,
			},
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		siteURL: cfg.SiteURL,
		siteID:  cfg.SiteID,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// SiteID returns the configured site id or resolves it once from the site URL.
func (c *Client) SiteID(ctx context.Context) (string, error) {
	c.siteMu.Lock()
	defer c.siteMu.Unlock()

	if c.siteID != "" {
		return c.siteID, nil
	}

	m := siteURLPattern.FindStringSubmatch(c.siteURL)
	if m == nil {
		return "", fmt.Errorf("invalid SharePoint site URL %q", c.siteURL)
	}

	var site struct {
		ID string `json:"id"`
	}
	resp, err := c.do(ctx, http.MethodGet, "/sites/"+m[1]+":/sites/"+m[2], nil, "")
	if err != nil {
		return "", infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to resolve SharePoint site", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to resolve SharePoint site", readAPIError(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(&site); err != nil || site.ID == "" {
		return "", infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "unexpected site lookup response", err)
	}

	c.siteID = site.ID
	c.logger.Info("resolved SharePoint site", "site_id", site.ID)
	return site.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.http.Do(req)
}

// APIError is a non-2xx Graph response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph API %d %s: %s", e.Status, e.Code, e.Message)
}

func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error.Code != "" {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
