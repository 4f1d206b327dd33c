package command

import (
	"fmt"

	"github.com/tair/starwars-api/internal/catalog/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// CreateCharacterCommand represents the command to create a character
type CreateCharacterCommand struct {
	ActorID   uint
	Name      string
	BirthYear *string
	Gender    *string
}

// CreateCharacterHandler handles character creation command
type CreateCharacterHandler struct {
	catalog domain.CatalogRepository
	users   userdomain.UserRepository
}

// NewCreateCharacterHandler creates a new create character handler
func NewCreateCharacterHandler(catalog domain.CatalogRepository, users userdomain.UserRepository) *CreateCharacterHandler {
	return &CreateCharacterHandler{catalog: catalog, users: users}
}

// Handle executes the create character command
func (h *CreateCharacterHandler) Handle(cmd CreateCharacterCommand) (*domain.Character, error) {
	if err := requireAdmin(h.users, cmd.ActorID); err != nil {
		return nil, err
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	character := &domain.Character{
		Name:      cmd.Name,
		BirthYear: cmd.BirthYear,
		Gender:    cmd.Gender,
	}

	if err := h.catalog.CreateCharacter(character); err != nil {
		return nil, err
	}
	return character, nil
}
