package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestFetchItemsSuccess(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":"1","title":"First","category":"golang","tags":["go"]},
			{"id":2,"description":"only a summary"}
		]}`))
	})

	items, err := client.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "Go", items[0].Category)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, DefaultTitle, items[1].Title)
	assert.Equal(t, "only a summary", items[1].Summary)
}

func TestFetchItemsTopLevelArray(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id":"1","title":"Solo"}]`))
	})

	items, err := client.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Solo", items[0].Title)
}

func TestFetchItemsHTTPError(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchItemsBadJSON(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items": [`))
	})

	_, err := client.FetchItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}

func TestFetchItemsUnexpectedShape(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"entries":[{"title":"hidden"}]}`))
	})

	items, err := client.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchItemsBypassesCaches(t *testing.T) {
	var got http.Header
	client := feedTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	})

	_, err := client.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no-cache", got.Get("Cache-Control"))
	assert.Equal(t, "no-cache", got.Get("Pragma"))
}

func TestFetchItemsCancelledContext(t *testing.T) {
	client := feedTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchItems(ctx)
	require.Error(t, err)
}
