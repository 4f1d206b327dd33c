package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// GetPlanetQuery represents the query to get a planet by ID
type GetPlanetQuery struct {
	ID uint
}

// GetPlanetHandler handles get planet query
type GetPlanetHandler struct {
	catalog domain.CatalogRepository
}

// NewGetPlanetHandler creates a new get planet handler
func NewGetPlanetHandler(catalog domain.CatalogRepository) *GetPlanetHandler {
	return &GetPlanetHandler{catalog: catalog}
}

// Handle executes the get planet query
func (h *GetPlanetHandler) Handle(query GetPlanetQuery) (*domain.Planet, error) {
	if query.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return h.catalog.FindPlanetByID(query.ID)
}
