package domain

import (
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
)

// ErrNotFound signals a missing favorite row
var ErrNotFound = errors.New("favorite not found")

// ErrInvalidSelection signals a favorite row that does not reference
// exactly one catalog entity
var ErrInvalidSelection = errors.New("favorite must reference exactly one catalog entity")

// Favorite is a ledger row associating one user with one catalog entity.
// The persisted schema keeps three nullable columns for relational
// compatibility; exactly one of them is set on any row accepted by the
// repository.
type Favorite struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CharacterID *uint     `json:"character_id" gorm:"index"`
	PlanetID    *uint     `json:"planet_id" gorm:"index"`
	VehicleID   *uint     `json:"vehicle_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// Selection is the tagged pair the application layer works with instead
// of the three nullable foreign keys
type Selection struct {
	Kind     catalogdomain.Kind
	EntityID uint
}

// New builds a ledger row for the given user and selection, setting the
// single foreign key that matches the selection's kind
func New(userID uint, sel Selection) (*Favorite, error) {
	if sel.EntityID == 0 {
		return nil, ErrInvalidSelection
	}
	fav := &Favorite{UserID: userID}
	id := sel.EntityID
	switch sel.Kind {
	case catalogdomain.KindCharacter:
		fav.CharacterID = &id
	case catalogdomain.KindPlanet:
		fav.PlanetID = &id
	case catalogdomain.KindVehicle:
		fav.VehicleID = &id
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSelection, sel.Kind)
	}
	return fav, nil
}

// Selection reports which catalog entity this row references. ok is false
// when the row does not reference exactly one entity.
func (f *Favorite) Selection() (Selection, bool) {
	var sel Selection
	set := 0
	if f.CharacterID != nil {
		sel = Selection{Kind: catalogdomain.KindCharacter, EntityID: *f.CharacterID}
		set++
	}
	if f.PlanetID != nil {
		sel = Selection{Kind: catalogdomain.KindPlanet, EntityID: *f.PlanetID}
		set++
	}
	if f.VehicleID != nil {
		sel = Selection{Kind: catalogdomain.KindVehicle, EntityID: *f.VehicleID}
		set++
	}
	return sel, set == 1
}

// FavoriteRepository defines the contract for ledger data access.
// Add rejects rows violating the exactly-one-entity invariant but imposes
// no uniqueness: repeated adds for the same selection produce duplicate rows.
type FavoriteRepository interface {
	Add(favorite *Favorite) error
	Remove(userID uint, sel Selection) error
	FindByUser(userID uint) ([]Favorite, error)
}
