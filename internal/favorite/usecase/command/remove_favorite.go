package command

import (
	"github.com/tair/starwars-api/internal/favorite/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// RemoveFavoriteCommand represents the command to remove a favorite
type RemoveFavoriteCommand struct {
	UserID    uint
	Selection domain.Selection
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	users     userdomain.UserRepository
	favorites domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(users userdomain.UserRepository, favorites domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{users: users, favorites: favorites}
}

// Handle executes the remove favorite command. When duplicates exist only
// the first matching row is removed.
func (h *RemoveFavoriteHandler) Handle(cmd RemoveFavoriteCommand) error {
	if _, err := h.users.FindByID(cmd.UserID); err != nil {
		return err
	}
	return h.favorites.Remove(cmd.UserID, cmd.Selection)
}
