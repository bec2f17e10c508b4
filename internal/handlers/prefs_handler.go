package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/prefs"
)

// ClientKeyHeader identifica o navegador dono das preferências. Sem o
// header as preferências caem num balde anônimo compartilhado, o que só
// acontece com clientes fora do fluxo normal das páginas.
const ClientKeyHeader = "X-Client-Key"

type PrefsHandler struct {
	favorites *prefs.Favorites
	selector  *prefs.Selector
}

func NewPrefsHandler(favorites *prefs.Favorites, selector *prefs.Selector) *PrefsHandler {
	return &PrefsHandler{favorites: favorites, selector: selector}
}

func clientKey(c *gin.Context) string {
	if key := c.GetHeader(ClientKeyHeader); key != "" {
		return key
	}
	return "anon"
}

// --------- Favoritos ---------

func (h *PrefsHandler) ListFavorites(c *gin.Context) {
	ids, err := h.favorites.List(c.Request.Context(), clientKey(c))
	if err != nil {
		httperr.Internal(c, "falha_ao_listar_favoritos", "Erro ao carregar favoritos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favoritos": ids})
}

func (h *PrefsHandler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "produto_invalido", "Id de produto inválido.")
		return
	}

	active, err := h.favorites.Toggle(c.Request.Context(), clientKey(c), uint(id))
	if err != nil {
		httperr.Internal(c, "falha_ao_favoritar", "Erro ao atualizar favoritos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id_produto": uint(id),
		"favorito":   active,
	})
}

// --------- Loja selecionada ---------

type SelectStoreRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (h *PrefsHandler) GetSelectedStore(c *gin.Context) {
	sel, err := h.selector.Current(c.Request.Context(), clientKey(c))
	if err != nil {
		httperr.Internal(c, "falha_ao_buscar_loja", "Erro ao carregar a loja selecionada.")
		return
	}

	c.JSON(http.StatusOK, sel)
}

func (h *PrefsHandler) SelectStore(c *gin.Context) {
	var req SelectStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sel := prefs.SelectedStore{ID: req.ID, Name: req.Name}
	if err := h.selector.Select(c.Request.Context(), clientKey(c), sel); err != nil {
		httperr.Internal(c, "falha_ao_salvar_loja", "Erro ao salvar a loja selecionada.")
		return
	}

	c.JSON(http.StatusOK, sel)
}
