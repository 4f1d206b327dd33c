package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/catalog/domain"
	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// Deletes cascade removal of favorite rows referencing the entity inside
// one transaction, keeping the ledger free of dangling references at the
// storage layer instead of relying on mapping annotations.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AutoMigrate runs database migrations for all catalog entities
func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Character{}, &domain.Planet{}, &domain.Vehicle{})
}

func (r *GormCatalogRepository) CreateCharacter(character *domain.Character) error {
	if err := r.db.Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) FindCharacterByID(id uint) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find character: %w", err)
	}
	return &character, nil
}

func (r *GormCatalogRepository) FindAllCharacters() ([]domain.Character, error) {
	var characters []domain.Character
	if err := r.db.Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to find characters: %w", err)
	}
	return characters, nil
}

func (r *GormCatalogRepository) DeleteCharacter(id uint) error {
	return r.deleteWithCascade(id, "character_id", &domain.Character{})
}

func (r *GormCatalogRepository) CreatePlanet(planet *domain.Planet) error {
	if err := r.db.Create(planet).Error; err != nil {
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) FindPlanetByID(id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}
	return &planet, nil
}

func (r *GormCatalogRepository) FindAllPlanets() ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to find planets: %w", err)
	}
	return planets, nil
}

func (r *GormCatalogRepository) DeletePlanet(id uint) error {
	return r.deleteWithCascade(id, "planet_id", &domain.Planet{})
}

func (r *GormCatalogRepository) CreateVehicle(vehicle *domain.Vehicle) error {
	if err := r.db.Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) FindVehicleByID(id uint) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &vehicle, nil
}

func (r *GormCatalogRepository) FindAllVehicles() ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := r.db.Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *GormCatalogRepository) DeleteVehicle(id uint) error {
	return r.deleteWithCascade(id, "vehicle_id", &domain.Vehicle{})
}

// deleteWithCascade removes the entity and every favorite row that
// references it in a single transaction
func (r *GormCatalogRepository) deleteWithCascade(id uint, fkColumn string, model interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(fkColumn+" = ?", id).Delete(&favdomain.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		result := tx.Delete(model, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
