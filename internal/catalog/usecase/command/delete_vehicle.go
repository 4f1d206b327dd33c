package command

import (
	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// DeleteVehicleCommand represents the command to delete a vehicle
type DeleteVehicleCommand struct {
	ActorID uint
	ID      uint
}

// DeleteVehicleHandler handles vehicle deletion command
type DeleteVehicleHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewDeleteVehicleHandler creates a new delete vehicle handler
func NewDeleteVehicleHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *DeleteVehicleHandler {
	return &DeleteVehicleHandler{catalog: catalog, users: users}
}

// Handle executes the delete vehicle command
func (h *DeleteVehicleHandler) Handle(cmd DeleteVehicleCommand) error {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return err
	}
	return h.catalog.DeleteVehicle(cmd.ID)
}
