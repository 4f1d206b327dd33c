package query

import (
	"errors"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/favorite/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// GetUserFavoritesQuery represents the query for a user's favorites view
type GetUserFavoritesQuery struct {
	UserID uint
}

// FavoritesView is the serialized favorites grouping returned by the API
type FavoritesView struct {
	FavoritePlanets    []catalogdomain.Planet    `json:"favorite_planets"`
	FavoriteCharacters []catalogdomain.Character `json:"favorite_characters"`
	FavoriteVehicles   []catalogdomain.Vehicle   `json:"favorite_vehicles"`
}

// GetUserFavoritesHandler handles the favorites view query
type GetUserFavoritesHandler struct {
	users     userdomain.UserRepository
	catalog   catalogdomain.CatalogRepository
	favorites domain.FavoriteRepository
}

// NewGetUserFavoritesHandler creates a new favorites view handler
func NewGetUserFavoritesHandler(
	users userdomain.UserRepository,
	catalog catalogdomain.CatalogRepository,
	favorites domain.FavoriteRepository,
) *GetUserFavoritesHandler {
	return &GetUserFavoritesHandler{users: users, catalog: catalog, favorites: favorites}
}

// Handle partitions the user's ledger rows by kind and resolves each to
// its catalog record. Rows whose referenced entity no longer exists are
// dropped silently; rows that reference no single entity are skipped.
func (h *GetUserFavoritesHandler) Handle(query GetUserFavoritesQuery) (*FavoritesView, error) {
	if _, err := h.users.FindByID(query.UserID); err != nil {
		return nil, err
	}

	rows, err := h.favorites.FindByUser(query.UserID)
	if err != nil {
		return nil, err
	}

	view := &FavoritesView{
		FavoritePlanets:    []catalogdomain.Planet{},
		FavoriteCharacters: []catalogdomain.Character{},
		FavoriteVehicles:   []catalogdomain.Vehicle{},
	}

	for _, row := range rows {
		sel, ok := row.Selection()
		if !ok {
			continue
		}
		switch sel.Kind {
		case catalogdomain.KindPlanet:
			planet, err := h.catalog.FindPlanetByID(sel.EntityID)
			if err != nil {
				if errors.Is(err, catalogdomain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			view.FavoritePlanets = append(view.FavoritePlanets, *planet)
		case catalogdomain.KindCharacter:
			character, err := h.catalog.FindCharacterByID(sel.EntityID)
			if err != nil {
				if errors.Is(err, catalogdomain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			view.FavoriteCharacters = append(view.FavoriteCharacters, *character)
		case catalogdomain.KindVehicle:
			vehicle, err := h.catalog.FindVehicleByID(sel.EntityID)
			if err != nil {
				if errors.Is(err, catalogdomain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			view.FavoriteVehicles = append(view.FavoriteVehicles, *vehicle)
		}
	}

	return view, nil
}
