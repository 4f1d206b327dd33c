package command

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// DeletePlanetCommand represents the command to delete a planet
type DeletePlanetCommand struct {
	ActorID uint
	ID      uint
}

// DeletePlanetHandler handles planet deletion command
type DeletePlanetHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewDeletePlanetHandler creates a new delete planet handler
func NewDeletePlanetHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *DeletePlanetHandler {
	return &DeletePlanetHandler{catalog: catalog, users: users}
}

// Handle executes the delete planet command
func (h *DeletePlanetHandler) Handle(cmd DeletePlanetCommand) error {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return err
	}
	return h.catalog.DeletePlanet(cmd.ID)
}
