package ikea

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/priceguesser/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"searchResultPage": {
		"products": {
			"main": {
				"items": [
					{
						"product": {
							"id": "40299687",
							"name": "BILLY",
							"typeName": "Bookcase",
							"mainImageUrl": "https://img.test/billy.jpg",
							"salesPrice": {
								"current": {"wholeNumber": "49", "decimals": "99"},
								"currency": "USD"
							},
							"pipUrl": "/us/en/p/billy-40299687/"
						}
					}
				]
			}
		}
	}
}`

func TestNewClient(t *testing.T) {
	client := NewClient("https://search.example.com", "test-agent", 50, 5)

	assert.NotNil(t, client)
	assert.Equal(t, "https://search.example.com", client.baseURL)
	assert.Equal(t, "test-agent", client.userAgent)
	assert.Equal(t, 50, client.resultSize)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("https://search.example.com", "test-agent", 0, 0)

	assert.Equal(t, 50, client.resultSize)
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/en/search-result-page", r.URL.Path)
		assert.Equal(t, "lamp", r.URL.Query().Get("q"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		assert.Equal(t, "PRODUCT", r.URL.Query().Get("types"))
		assert.Equal(t, "true", r.URL.Query().Get("autocorrect"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent", 50, 100)
	result, err := client.Search(context.Background(), "lamp", "us", "en")

	require.NoError(t, err)
	require.Len(t, result.Items(), 1)
	assert.Equal(t, "40299687", result.Items()[0].Product.ID)
	assert.Equal(t, "49", result.Items()[0].Product.SalesPrice.Current.WholeNumber)
}

func TestSearch_NonOKStatus(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent", 50, 100)
	_, err := client.Search(context.Background(), "lamp", "us", "en")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogFailure))
	// A failed term is skipped, never retried
	assert.Equal(t, int32(1), requests.Load())
}

func TestSearch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent", 50, 100)
	_, err := client.Search(context.Background(), "lamp", "us", "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestSearch_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use

	client := NewClient(server.URL, "test-agent", 50, 100)
	_, err := client.Search(context.Background(), "lamp", "us", "en")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogFailure))
}

func TestSearchRaw_PassesBodyAndStatusThrough(t *testing.T) {
	t.Run("success body is untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"anything": "goes"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-agent", 50, 100)
		body, status, err := client.SearchRaw(context.Background(), "lamp", "us", "en")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"anything": "goes"}`, string(body))
	})

	t.Run("upstream status is mirrored", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"blocked": true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-agent", 50, 100)
		body, status, err := client.SearchRaw(context.Background(), "lamp", "us", "en")

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, status)
		assert.JSONEq(t, `{"blocked": true}`, string(body))
	})
}

func TestSearchURL_EncodesTerm(t *testing.T) {
	client := NewClient("https://search.example.com", "test-agent", 50, 5)

	url := client.searchURL("cutting board", "gb", "en")

	assert.Contains(t, url, "https://search.example.com/gb/en/search-result-page?")
	assert.Contains(t, url, "q=cutting+board")
	assert.Contains(t, url, "v=20210322")
}
