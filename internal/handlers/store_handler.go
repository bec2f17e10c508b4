package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/geo"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/models"
)

type StoreHandler struct {
	db *gorm.DB
}

func NewStoreHandler(db *gorm.DB) *StoreHandler {
	return &StoreHandler{db: db}
}

func (h *StoreHandler) List(c *gin.Context) {
	var stores []models.Store
	if err := h.db.Order("nome_loja ASC").Find(&stores).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar_lojas", "Erro ao carregar as lojas.")
		return
	}

	c.JSON(http.StatusOK, stores)
}

// Nearest resolve a loja ativa a partir das coordenadas do navegador.
// Sem coordenadas (permissão negada ou API ausente) cai na loja padrão.
func (h *StoreHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	points := h.loadStorePoints(c)

	if latStr == "" || lonStr == "" {
		h.respondDefault(c, points)
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		httperr.BadRequest(c, "coordenadas_invalidas", "Parâmetros lat/lon inválidos.")
		return
	}

	nearest, dist, ok := geo.FindNearest(points, lat, lon)
	if !ok {
		h.respondDefault(c, geo.FallbackStores())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id_loja":      nearest.ID,
		"nome_loja":    nearest.Name,
		"distancia_km": dist,
	})
}

// loadStorePoints tenta o banco primeiro; sem lojas com coordenadas, usa
// a lista fixa de unidades.
func (h *StoreHandler) loadStorePoints(c *gin.Context) []geo.StorePoint {
	var stores []models.Store
	if err := h.db.Find(&stores).Error; err != nil {
		log.Println("geolocator: erro ao carregar lojas, usando fallback:", err)
		return geo.FallbackStores()
	}

	points := make([]geo.StorePoint, 0, len(stores))
	for _, s := range stores {
		if s.Latitude == nil || s.Longitude == nil {
			continue
		}
		points = append(points, geo.StorePoint{
			ID:   s.ID,
			Name: s.Name,
			Lat:  *s.Latitude,
			Lon:  *s.Longitude,
		})
	}

	if len(points) == 0 {
		log.Println("geolocator: nenhuma loja com coordenadas, usando fallback")
		return geo.FallbackStores()
	}
	return points
}

func (h *StoreHandler) respondDefault(c *gin.Context, points []geo.StorePoint) {
	for _, p := range points {
		if p.ID == geo.DefaultStoreID {
			c.JSON(http.StatusOK, gin.H{"id_loja": p.ID, "nome_loja": p.Name})
			return
		}
	}

	first := points[0]
	c.JSON(http.StatusOK, gin.H{"id_loja": first.ID, "nome_loja": first.Name})
}
