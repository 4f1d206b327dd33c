package query

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
)

// ListCharactersQuery represents the query to list all characters
type ListCharactersQuery struct{}

// ListCharactersHandler handles list characters query
type ListCharactersHandler struct {
	catalog domain.CatalogRepository
}

// NewListCharactersHandler creates a new list characters handler
func NewListCharactersHandler(catalog domain.CatalogRepository) *ListCharactersHandler {
	return &ListCharactersHandler{catalog: catalog}
}

// Handle executes the list characters query
func (h *ListCharactersHandler) Handle(query ListCharactersQuery) ([]domain.Character, error) {
	return h.catalog.FindAllCharacters()
}
