package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// ListVehiclesQuery represents the query to list all vehicles
type ListVehiclesQuery struct{}

// ListVehiclesHandler handles list vehicles query
type ListVehiclesHandler struct {
	catalog domain.CatalogRepository
}

// NewListVehiclesHandler creates a new list vehicles handler
func NewListVehiclesHandler(catalog domain.CatalogRepository) *ListVehiclesHandler {
	return &ListVehiclesHandler{catalog: catalog}
}

// Handle executes the list vehicles query
func (h *ListVehiclesHandler) Handle(query ListVehiclesQuery) ([]domain.Vehicle, error) {
	return h.catalog.FindAllVehicles()
}
