package command

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// DeleteCharacterCommand represents the command to delete a character
type DeleteCharacterCommand struct {
	ActorID uint
	ID      uint
}

// DeleteCharacterHandler handles character deletion command
type DeleteCharacterHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewDeleteCharacterHandler creates a new delete character handler
func NewDeleteCharacterHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *DeleteCharacterHandler {
	return &DeleteCharacterHandler{catalog: catalog, users: users}
}

// Handle executes the delete character command
func (h *DeleteCharacterHandler) Handle(cmd DeleteCharacterCommand) error {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return err
	}
	return h.catalog.DeleteCharacter(cmd.ID)
}
