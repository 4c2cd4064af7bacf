package wallhaven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

func pageOf(page, lastPage, perPage int) searchResponse {
	resp := searchResponse{Meta: meta{CurrentPage: page, LastPage: lastPage, PerPage: perPage}}
	for i := 0; i < perPage; i++ {
		id := fmt.Sprintf("p%di%d", page, i)
		resp.Data = append(resp.Data, wallpaper{
			ID:   id,
			Path: "https://w.wallhaven.cc/full/xx/wallhaven-" + id + ".jpg",
			Thumbs: thumbs{
				Small: "https://th.wallhaven.cc/small/xx/" + id + ".jpg",
			},
		})
	}
	return resp
}

func newTestServer(t *testing.T, lastPage, perPage int, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "/search", r.URL.Path)
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			page, _ = strconv.Atoi(p)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pageOf(page, lastPage, perPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch_TrimsToCount(t *testing.T) {
	var hits int32
	srv := newTestServer(t, 5, 24, &hits)

	client := NewClient(srv.URL)
	images, err := client.Search(context.Background(), model.SearchQuery{Count: 10})
	require.NoError(t, err)

	assert.Len(t, images, 10)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, "https://w.wallhaven.cc/full/xx/wallhaven-p1i0.jpg", images[0].Path)
	assert.Equal(t, "https://th.wallhaven.cc/small/xx/p1i0.jpg", images[0].Thumb)
}

func TestSearch_FollowsPages(t *testing.T) {
	var hits int32
	srv := newTestServer(t, 3, 24, &hits)

	client := NewClient(srv.URL)
	images, err := client.Search(context.Background(), model.SearchQuery{Count: 50})
	require.NoError(t, err)

	assert.Len(t, images, 50)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, "p3i1", images[49].ID)
}

func TestSearch_StopsAtLastPage(t *testing.T) {
	var hits int32
	srv := newTestServer(t, 2, 5, &hits)

	client := NewClient(srv.URL)
	images, err := client.Search(context.Background(), model.SearchQuery{Count: 100})
	require.NoError(t, err)

	assert.Len(t, images, 10)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Search(context.Background(), model.NewSearchQuery())
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestSearch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Search(context.Background(), model.NewSearchQuery())
	assert.Error(t, err)
}

func TestSearch_SkipsEntriesWithoutPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := searchResponse{
			Data: []wallpaper{
				{ID: "a"},
				{ID: "b", Path: "https://w.wallhaven.cc/full/b.png", Thumbs: thumbs{Large: "large-b"}},
			},
			Meta: meta{CurrentPage: 1, LastPage: 1},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	images, err := NewClient(srv.URL).Search(context.Background(), model.SearchQuery{Count: 5})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "b", images[0].ID)
	assert.Equal(t, "large-b", images[0].Thumb, "falls back to the large thumbnail")
}

func TestBuildParams(t *testing.T) {
	q := model.SearchQuery{
		Resolution: "2560x1440",
		APIKey:     "secret",
		Count:      24,
		Range:      model.Range1Week,
		Sort:       model.SortToplist,
	}
	params := BuildParams(q, 1)

	assert.Equal(t, "toplist", params.Get("sorting"))
	assert.Equal(t, "1w", params.Get("topRange"))
	assert.Equal(t, "2560x1440", params.Get("atleast"))
	assert.Equal(t, "secret", params.Get("apikey"))
	assert.Equal(t, model.DefaultCategories, params.Get("categories"))
	assert.Equal(t, model.DefaultPurity, params.Get("purity"))
	assert.False(t, params.Has("page"))

	q.Sort = model.SortViews
	params = BuildParams(q, 3)
	assert.False(t, params.Has("topRange"), "range only applies to toplist")
	assert.Equal(t, "3", params.Get("page"))
}

func TestRedact(t *testing.T) {
	u, err := url.Parse("https://wallhaven.cc/api/v1/search?apikey=secret&sorting=views")
	require.NoError(t, err)

	out := redact(u)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "sorting=views")
	assert.Equal(t, "secret", u.Query().Get("apikey"), "original URL untouched")
}
