//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	catalogrepository "github.com/tair/starwars-api/internal/catalog/repository"
	"github.com/tair/starwars-api/internal/favorite/delivery/http"
	"github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/favorite/repository"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	userrepository "github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/kafka"
)

// ProvideFavoriteRepository provides the ledger repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewGormFavoriteRepository(db)
}

// ProvideCatalogRepository provides the cached catalog repository
func ProvideCatalogRepository(db *gorm.DB, redisClient *redis.Client) catalogdomain.CatalogRepository {
	return catalogrepository.NewCachedCatalogRepository(catalogrepository.NewGormCatalogRepository(db), redisClient)
}

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
	ProvideCatalogRepository,
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client, publisher *kafka.Publisher) (*http.FavoriteHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewFavoriteHandler,
	)
	return nil, nil
}
