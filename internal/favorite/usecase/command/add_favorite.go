package command

import (
	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/favorite/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// AddFavoriteCommand represents the command to add a favorite
type AddFavoriteCommand struct {
	UserID    uint
	Selection domain.Selection
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	users     userdomain.UserRepository
	catalog   catalogdomain.CatalogRepository
	favorites domain.FavoriteRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(
	users userdomain.UserRepository,
	catalog catalogdomain.CatalogRepository,
	favorites domain.FavoriteRepository,
) *AddFavoriteHandler {
	return &AddFavoriteHandler{users: users, catalog: catalog, favorites: favorites}
}

// Handle executes the add favorite command. Both the user and the target
// entity must exist; there is deliberately no duplicate check, matching
// the ledger's documented semantics.
func (h *AddFavoriteHandler) Handle(cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if _, err := h.users.FindByID(cmd.UserID); err != nil {
		return nil, err
	}

	if err := h.entityExists(cmd.Selection); err != nil {
		return nil, err
	}

	favorite, err := domain.New(cmd.UserID, cmd.Selection)
	if err != nil {
		return nil, err
	}
	if err := h.favorites.Add(favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (h *AddFavoriteHandler) entityExists(sel domain.Selection) error {
	var err error
	switch sel.Kind {
	case catalogdomain.KindCharacter:
		_, err = h.catalog.FindCharacterByID(sel.EntityID)
	case catalogdomain.KindPlanet:
		_, err = h.catalog.FindPlanetByID(sel.EntityID)
	case catalogdomain.KindVehicle:
		_, err = h.catalog.FindVehicleByID(sel.EntityID)
	default:
		return domain.ErrInvalidSelection
	}
	return err
}
