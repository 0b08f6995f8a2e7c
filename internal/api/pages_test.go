package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndex_ListsContinentsAndFeatured(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	rec := get(h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	for _, name := range []string{"North America", "South America", "Europe", "Asia", "Africa", "Oceania"} {
		assert.Contains(t, body, name)
	}
	for _, name := range []string{"New York City", "Machu Picchu", "Tokyo"} {
		assert.Contains(t, body, name)
	}
}

func TestContinent_KnownIDs(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	for id := 1; id <= 6; id++ {
		rec := get(h, fmt.Sprintf("/continent/%d", id))
		assert.Equal(t, http.StatusOK, rec.Code, "continent %d", id)
	}
}

func TestContinent_ShowsItsDestinations(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	rec := get(h, "/continent/4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tokyo")
	assert.NotContains(t, rec.Body.String(), "Machu Picchu")
}

func TestContinent_UnknownIDs(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	for _, path := range []string{"/continent/0", "/continent/7", "/continent/999", "/continent/abc", "/continent/99999999999999999999999", "/continent/2147483648", "/continent/3000000000"} {
		rec := get(h, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Page not found", path)
	}
}

func TestDestination_Found(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	rec := get(h, "/destination/2")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Machu Picchu")
	assert.Contains(t, body, "From $1899.99")
	assert.Contains(t, body, `<a href="/continent/2">South America</a>`)
}

func TestDestination_NotFound(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	assert.Equal(t, http.StatusNotFound, get(h, "/destination/4").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/destination/x").Code)
}

func TestPages_IDsBeyondInt4AreNotFound(t *testing.T) {
	fs := newFakeStore(t)
	// Any store call would fail; out-of-range ids must never reach it.
	fs.failReads = errBoom
	h := newTestRouter(t, fs)

	for _, path := range []string{"/continent/2147483648", "/continent/3000000000", "/destination/2147483648", "/destination/3000000000"} {
		rec := get(h, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Page not found", path)
	}
	assert.Equal(t, http.StatusInternalServerError, get(h, "/continent/2147483647").Code)
}

func TestPages_StoreFailureIs500(t *testing.T) {
	fs := newFakeStore(t)
	fs.failReads = errBoom
	h := newTestRouter(t, fs)

	for _, path := range []string{"/", "/continent/1", "/destination/1"} {
		assert.Equal(t, http.StatusInternalServerError, get(h, path).Code, path)
	}
}

func TestUnknownRoute_RendersNotFoundPage(t *testing.T) {
	h := newTestRouter(t, newFakeStore(t))

	rec := get(h, "/nowhere")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
