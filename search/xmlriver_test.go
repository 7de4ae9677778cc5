package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serpFixture = `<?xml version="1.0" encoding="utf-8"?>
<yandexsearch version="1.0">
<response>
<found priority="all">1250000</found>
<results>
<grouping>
<group>
<doc>
<url>https://other.example/page</url>
<domain>other.example</domain>
<title>Other result</title>
</doc>
</group>
<group>
<doc>
<url>https://www.target.example/products</url>
<domain>www.target.example</domain>
<title>Target result</title>
</doc>
</group>
<group>
<doc>
<url>https://target.example/blog</url>
<domain>target.example</domain>
<title>Second target hit</title>
</doc>
</group>
</grouping>
</results>
</response>
</yandexsearch>`

const serpErrorFixture = `<?xml version="1.0" encoding="utf-8"?>
<yandexsearch version="1.0">
<response>
<error code="32">Daily request limit exceeded</error>
</response>
</yandexsearch>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		User:     "12345",
		Key:      "secret",
		Domain:   "target.example",
		Endpoint: server.URL,
	})
	require.NoError(t, err)

	return client
}

func TestNewClientValidation(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewClient(Config{Domain: "target.example"})
		assert.ErrorIs(t, err, ErrCredentialsRequired)
	})

	t.Run("missing target domain", func(t *testing.T) {
		_, err := NewClient(Config{User: "12345", Key: "secret"})
		assert.ErrorIs(t, err, ErrTargetDomainRequired)
	})
}

func TestLookup(t *testing.T) {
	var gotQuery, gotUser, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotUser = r.URL.Query().Get("user")
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(serpFixture))
	})

	row, err := client.Lookup(context.Background(), "buy widgets")
	require.NoError(t, err)

	assert.Equal(t, "buy widgets", gotQuery)
	assert.Equal(t, "12345", gotUser)
	assert.Equal(t, "secret", gotKey)

	assert.Equal(t, []string{"query", "domain", "position", "url", "found"}, row.Columns())
	assert.Equal(t, "buy widgets", row.Value("query"))
	assert.Equal(t, "target.example", row.Value("domain"))
	// The first match wins, counting docs across groups; www. is stripped.
	assert.Equal(t, "2", row.Value("position"))
	assert.Equal(t, "https://www.target.example/products", row.Value("url"))
	assert.Equal(t, "1250000", row.Value("found"))
}

func TestLookupDomainAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(serpFixture))
	})
	client.domain = "missing.example"

	row, err := client.Lookup(context.Background(), "buy widgets")
	require.NoError(t, err)
	assert.Equal(t, "-", row.Value("position"))
	assert.Equal(t, "", row.Value("url"))
}

func TestLookupEmptyQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(serpFixture))
	})

	_, err := client.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestLookupAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(serpErrorFixture))
	})

	_, err := client.Lookup(context.Background(), "buy widgets")
	require.ErrorIs(t, err, ErrAPIError)
	assert.Contains(t, err.Error(), "Daily request limit exceeded")
}

func TestLookupHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Lookup(context.Background(), "buy widgets")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestLookupMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<yandexsearch><response>"))
	})

	_, err := client.Lookup(context.Background(), "buy widgets")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
