package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/favorite/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

// Add inserts a ledger row. The exactly-one-entity invariant is enforced
// here, on the insert path; duplicates are intentionally not rejected.
func (r *GormFavoriteRepository) Add(favorite *domain.Favorite) error {
	if _, ok := favorite.Selection(); !ok {
		return domain.ErrInvalidSelection
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the first row matching the user and selection
func (r *GormFavoriteRepository) Remove(userID uint, sel domain.Selection) error {
	column, err := fkColumn(sel.Kind)
	if err != nil {
		return err
	}

	var favorite domain.Favorite
	err = r.db.
		Where("user_id = ? AND "+column+" = ?", userID, sel.EntityID).
		Order("id").
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to find favorite: %w", err)
	}

	if err := r.db.Delete(&favorite).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// FindByUser retrieves all ledger rows for a user
func (r *GormFavoriteRepository) FindByUser(userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := r.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return favorites, nil
}

func fkColumn(kind catalogdomain.Kind) (string, error) {
	switch kind {
	case catalogdomain.KindCharacter:
		return "character_id", nil
	case catalogdomain.KindPlanet:
		return "planet_id", nil
	case catalogdomain.KindVehicle:
		return "vehicle_id", nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidSelection, kind)
}
