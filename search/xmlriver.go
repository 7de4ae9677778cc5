package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/FrankX3M/check-positions/core"
)

// DefaultEndpoint is the XMLRiver Yandex SERP gateway.
const DefaultEndpoint = "https://xmlriver.com/search_yandex/xml"

// defaultTimeout bounds one lookup. The batch layer imposes no timeout of
// its own; a slow lookup surfaces there as an ordinary per-query failure.
const defaultTimeout = 30 * time.Second

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 4 << 20

// rowColumns is the fixed shape of one lookup result.
var rowColumns = []string{"query", "domain", "position", "url", "found"}

// Config holds the credentials and target for SERP lookups.
type Config struct {
	User     string // XMLRiver account ID
	Key      string // XMLRiver API key
	Domain   string // domain whose positions are reported
	Endpoint string // optional, DefaultEndpoint if empty
}

// Client queries an XMLRiver-style Yandex SERP endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	user       string
	key        string
	domain     string
	logger     *slog.Logger
}

var _ RowSource = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client) error

// WithHTTPClient sets a custom HTTP client.
// Default is an http.Client with a 30 second timeout.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient != nil {
			c.httpClient = httpClient
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a new SERP client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.User == "" || cfg.Key == "" {
		return nil, ErrCredentialsRequired
	}
	if cfg.Domain == "" {
		return nil, ErrTargetDomainRequired
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   endpoint,
		user:       cfg.User,
		key:        cfg.Key,
		domain:     normalizeDomain(cfg.Domain),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Yandex XML response envelope.
type serpResponse struct {
	XMLName xml.Name    `xml:"yandexsearch"`
	Error   *serpError  `xml:"response>error"`
	Found   []serpFound `xml:"response>found"`
	Groups  []serpGroup `xml:"response>results>grouping>group"`
}

type serpError struct {
	Code string `xml:"code,attr"`
	Text string `xml:",chardata"`
}

type serpFound struct {
	Priority string `xml:"priority,attr"`
	Value    string `xml:",chardata"`
}

type serpGroup struct {
	Docs []serpDoc `xml:"doc"`
}

type serpDoc struct {
	URL    string `xml:"url"`
	Domain string `xml:"domain"`
	Title  string `xml:"title"`
}

// Lookup performs one SERP lookup and reports the 1-based position of the
// configured target domain in the returned results, or "-" when absent.
func (c *Client) Lookup(ctx context.Context, query string) (*core.Row, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	var parsed serpResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("%w: code %s: %s",
			ErrAPIError, parsed.Error.Code, strings.TrimSpace(parsed.Error.Text))
	}

	c.logger.Debug("lookup complete", "query", query, "groups", len(parsed.Groups))

	return c.buildRow(query, &parsed)
}

func (c *Client) lookupURL(query string) string {
	params := url.Values{}
	params.Set("user", c.user)
	params.Set("key", c.key)
	params.Set("query", query)
	return c.endpoint + "?" + params.Encode()
}

func (c *Client) buildRow(query string, parsed *serpResponse) (*core.Row, error) {
	position := "-"
	matchedURL := ""
	rank := 0
	for _, group := range parsed.Groups {
		for _, doc := range group.Docs {
			rank++
			if position == "-" && c.matches(doc) {
				position = strconv.Itoa(rank)
				matchedURL = doc.URL
			}
		}
	}

	found := "0"
	if len(parsed.Found) > 0 {
		found = strings.TrimSpace(parsed.Found[0].Value)
	}

	return core.NewRow(rowColumns, map[string]string{
		"query":    query,
		"domain":   c.domain,
		"position": position,
		"url":      matchedURL,
		"found":    found,
	})
}

// matches reports whether doc belongs to the target domain. The explicit
// domain element is preferred; the URL host is the fallback.
func (c *Client) matches(doc serpDoc) bool {
	if d := normalizeDomain(doc.Domain); d != "" {
		return d == c.domain || strings.HasSuffix(d, "."+c.domain)
	}
	u, err := url.Parse(doc.URL)
	if err != nil {
		return false
	}
	d := normalizeDomain(u.Hostname())
	return d == c.domain || strings.HasSuffix(d, "."+c.domain)
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}
