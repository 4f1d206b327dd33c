package command

import (
	"fmt"

	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// CreatePlanetCommand represents the command to create a planet
type CreatePlanetCommand struct {
	ActorID    uint
	Name       string
	Population *string
	Climate    *string
}

// CreatePlanetHandler handles planet creation command
type CreatePlanetHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewCreatePlanetHandler creates a new create planet handler
func NewCreatePlanetHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *CreatePlanetHandler {
	return &CreatePlanetHandler{catalog: catalog, users: users}
}

// Handle executes the create planet command
func (h *CreatePlanetHandler) Handle(cmd CreatePlanetCommand) (*domain.Planet, error) {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return nil, err
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	planet := &domain.Planet{
		Name:       cmd.Name,
		Population: cmd.Population,
		Climate:    cmd.Climate,
	}

	if err := h.catalog.CreatePlanet(planet); err != nil {
		return nil, err
	}
	return planet, nil
}
