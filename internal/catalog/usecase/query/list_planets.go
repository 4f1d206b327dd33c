package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// ListPlanetsQuery represents the query to list all planets
type ListPlanetsQuery struct{}

// ListPlanetsHandler handles list planets query
type ListPlanetsHandler struct {
	catalog domain.CatalogRepository
}

// NewListPlanetsHandler creates a new list planets handler
func NewListPlanetsHandler(catalog domain.CatalogRepository) *ListPlanetsHandler {
	return &ListPlanetsHandler{catalog: catalog}
}

// Handle executes the list planets query
func (h *ListPlanetsHandler) Handle(query ListPlanetsQuery) ([]domain.Planet, error) {
	return h.catalog.FindAllPlanets()
}
