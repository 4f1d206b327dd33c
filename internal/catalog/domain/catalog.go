package domain

import "errors"

// ErrNotFound signals a missing catalog record
var ErrNotFound = errors.New("record not found")

// Kind identifies one of the catalog entity collections
type Kind string

const (
	KindCharacter Kind = "character"
	KindPlanet    Kind = "planet"
	KindVehicle   Kind = "vehicle"
)

// Label returns the capitalized name used in API messages
func (k Kind) Label() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindPlanet:
		return "Planet"
	case KindVehicle:
		return "Vehicle"
	}
	return string(k)
}

// CatalogRepository defines the contract for catalog data access.
// Delete methods cascade removal of favorite rows referencing the entity.
type CatalogRepository interface {
	CreateCharacter(character *Character) error
	FindCharacterByID(id uint) (*Character, error)
	FindAllCharacters() ([]Character, error)
	DeleteCharacter(id uint) error

	CreatePlanet(planet *Planet) error
	FindPlanetByID(id uint) (*Planet, error)
	FindAllPlanets() ([]Planet, error)
	DeletePlanet(id uint) error

	CreateVehicle(vehicle *Vehicle) error
	FindVehicleByID(id uint) (*Vehicle, error)
	FindAllVehicles() ([]Vehicle, error)
	DeleteVehicle(id uint) error
}
