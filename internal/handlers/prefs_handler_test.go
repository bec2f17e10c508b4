package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/chateaupet/petshop-api/internal/prefs"
)

func newPrefsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPrefsHandler(
		prefs.NewFavorites(prefs.NewMemoryFavorites()),
		prefs.NewSelector(prefs.NewMemorySelection()),
	)

	r := gin.New()
	r.GET("/api/preferencias/favoritos", h.ListFavorites)
	r.POST("/api/preferencias/favoritos/:id", h.ToggleFavorite)
	r.GET("/api/preferencias/loja", h.GetSelectedStore)
	r.PUT("/api/preferencias/loja", h.SelectStore)
	return r
}

func doPrefs(r *gin.Engine, method, path, clientKey, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if clientKey != "" {
		req.Header.Set(ClientKeyHeader, clientKey)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPrefs_FavoriteToggleFlow(t *testing.T) {
	r := newPrefsRouter()

	w := doPrefs(r, http.MethodPost, "/api/preferencias/favoritos/42", "nav-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favorito":true`)

	w = doPrefs(r, http.MethodGet, "/api/preferencias/favoritos", "nav-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")

	w = doPrefs(r, http.MethodPost, "/api/preferencias/favoritos/42", "nav-1", "")
	assert.Contains(t, w.Body.String(), `"favorito":false`)
}

func TestPrefs_FavoritesIsolatedByClientKey(t *testing.T) {
	r := newPrefsRouter()

	doPrefs(r, http.MethodPost, "/api/preferencias/favoritos/7", "nav-1", "")

	w := doPrefs(r, http.MethodGet, "/api/preferencias/favoritos", "nav-2", "")

	var resp struct {
		Favoritos []uint `json:"favoritos"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Favoritos)
}

func TestPrefs_InvalidProductID(t *testing.T) {
	r := newPrefsRouter()

	w := doPrefs(r, http.MethodPost, "/api/preferencias/favoritos/abc", "nav-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrefs_SelectedStoreDefaultsAndPersists(t *testing.T) {
	r := newPrefsRouter()

	w := doPrefs(r, http.MethodGet, "/api/preferencias/loja", "nav-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)

	w = doPrefs(r, http.MethodPut, "/api/preferencias/loja", "nav-1", `{"id":4,"name":"Santos"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doPrefs(r, http.MethodGet, "/api/preferencias/loja", "nav-1", "")
	assert.Contains(t, w.Body.String(), `"id":4`)

	// Outro navegador continua na loja padrão.
	w = doPrefs(r, http.MethodGet, "/api/preferencias/loja", "nav-2", "")
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestPrefs_SelectStoreValidatesBody(t *testing.T) {
	r := newPrefsRouter()

	w := doPrefs(r, http.MethodPut, "/api/preferencias/loja", "nav-1", `{"name":"sem id"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
