package command

import (
	"fmt"

	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// CreateVehicleCommand represents the command to create a vehicle
type CreateVehicleCommand struct {
	ActorID      uint
	Name         string
	Model        *string
	VehicleClass *string
}

// CreateVehicleHandler handles vehicle creation command
type CreateVehicleHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewCreateVehicleHandler creates a new create vehicle handler
func NewCreateVehicleHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *CreateVehicleHandler {
	return &CreateVehicleHandler{catalog: catalog, users: users}
}

// Handle executes the create vehicle command
func (h *CreateVehicleHandler) Handle(cmd CreateVehicleCommand) (*domain.Vehicle, error) {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return nil, err
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	vehicle := &domain.Vehicle{
		Name:         cmd.Name,
		Model:        cmd.Model,
		VehicleClass: cmd.VehicleClass,
	}

	if err := h.catalog.CreateVehicle(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}
