//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/catalog/delivery/http"
	"github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/internal/catalog/repository"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	userrepository "github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/kafka"
)

// ProvideCatalogRepository provides the cached catalog repository
func ProvideCatalogRepository(db *gorm.DB, redisClient *redis.Client) domain.CatalogRepository {
	return repository.NewCachedCatalogRepository(repository.NewGormCatalogRepository(db), redisClient)
}

// ProvideUserRepository provides the user repository for the admin gate
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client, publisher *kafka.Publisher) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
