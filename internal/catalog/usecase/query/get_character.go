package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// GetCharacterQuery represents the query to get a character by ID
type GetCharacterQuery struct {
	ID uint
}

// GetCharacterHandler handles get character query
type GetCharacterHandler struct {
	catalog domain.CatalogRepository
}

// NewGetCharacterHandler creates a new get character handler
func NewGetCharacterHandler(catalog domain.CatalogRepository) *GetCharacterHandler {
	return &GetCharacterHandler{catalog: catalog}
}

// Handle executes the get character query
func (h *GetCharacterHandler) Handle(query GetCharacterQuery) (*domain.Character, error) {
	if query.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return h.catalog.FindCharacterByID(query.ID)
}
