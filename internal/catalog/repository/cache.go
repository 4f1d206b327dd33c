package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/starwars-api/internal/catalog/domain"
	"github.com/tair/starwars-api/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// CachedCatalogRepository is a read-through Redis cache in front of the
// catalog repository. Catalog reads dominate the workload; writes are
// admin-only and invalidate the affected kind. A nil Redis client disables
// caching and every call passes straight through, mirroring the degraded
// mode used when Redis is unreachable at startup.
type CachedCatalogRepository struct {
	next  domain.CatalogRepository
	redis *redis.Client
}

// NewCachedCatalogRepository wraps a catalog repository with caching
func NewCachedCatalogRepository(next domain.CatalogRepository, redisClient *redis.Client) *CachedCatalogRepository {
	return &CachedCatalogRepository{next: next, redis: redisClient}
}

func cacheKey(kind domain.Kind, id uint) string {
	return fmt.Sprintf("catalog:%s:%d", kind, id)
}

func cacheListKey(kind domain.Kind) string {
	return fmt.Sprintf("catalog:%s:all", kind)
}

// getCached unmarshals a cached value into dest, reporting a hit
func (c *CachedCatalogRepository) getCached(key string, dest interface{}) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	logger.Logger.Debug().Str("cache_key", key).Msg("Cache hit")
	return true
}

func (c *CachedCatalogRepository) setCached(key string, value interface{}) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(context.Background(), key, data, cacheTTL).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("cache_key", key).Msg("Failed to cache value")
	}
}

// invalidate drops the list key and the single-entity key for a kind
func (c *CachedCatalogRepository) invalidate(kind domain.Kind, id uint) {
	if c.redis == nil {
		return
	}
	keys := []string{cacheListKey(kind)}
	if id != 0 {
		keys = append(keys, cacheKey(kind, id))
	}
	if err := c.redis.Del(context.Background(), keys...).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("kind", string(kind)).Msg("Failed to invalidate cache")
	}
}

func (c *CachedCatalogRepository) CreateCharacter(character *domain.Character) error {
	if err := c.next.CreateCharacter(character); err != nil {
		return err
	}
	c.invalidate(domain.KindCharacter, 0)
	return nil
}

func (c *CachedCatalogRepository) FindCharacterByID(id uint) (*domain.Character, error) {
	var cached domain.Character
	if c.getCached(cacheKey(domain.KindCharacter, id), &cached) {
		return &cached, nil
	}
	character, err := c.next.FindCharacterByID(id)
	if err != nil {
		return nil, err
	}
	c.setCached(cacheKey(domain.KindCharacter, id), character)
	return character, nil
}

func (c *CachedCatalogRepository) FindAllCharacters() ([]domain.Character, error) {
	var cached []domain.Character
	if c.getCached(cacheListKey(domain.KindCharacter), &cached) {
		return cached, nil
	}
	characters, err := c.next.FindAllCharacters()
	if err != nil {
		return nil, err
	}
	c.setCached(cacheListKey(domain.KindCharacter), characters)
	return characters, nil
}

func (c *CachedCatalogRepository) DeleteCharacter(id uint) error {
	if err := c.next.DeleteCharacter(id); err != nil {
		return err
	}
	c.invalidate(domain.KindCharacter, id)
	return nil
}

func (c *CachedCatalogRepository) CreatePlanet(planet *domain.Planet) error {
	if err := c.next.CreatePlanet(planet); err != nil {
		return err
	}
	c.invalidate(domain.KindPlanet, 0)
	return nil
}

func (c *CachedCatalogRepository) FindPlanetByID(id uint) (*domain.Planet, error) {
	var cached domain.Planet
	if c.getCached(cacheKey(domain.KindPlanet, id), &cached) {
		return &cached, nil
	}
	planet, err := c.next.FindPlanetByID(id)
	if err != nil {
		return nil, err
	}
	c.setCached(cacheKey(domain.KindPlanet, id), planet)
	return planet, nil
}

func (c *CachedCatalogRepository) FindAllPlanets() ([]domain.Planet, error) {
	var cached []domain.Planet
	if c.getCached(cacheListKey(domain.KindPlanet), &cached) {
		return cached, nil
	}
	planets, err := c.next.FindAllPlanets()
	if err != nil {
		return nil, err
	}
	c.setCached(cacheListKey(domain.KindPlanet), planets)
	return planets, nil
}

func (c *CachedCatalogRepository) DeletePlanet(id uint) error {
	if err := c.next.DeletePlanet(id); err != nil {
		return err
	}
	c.invalidate(domain.KindPlanet, id)
	return nil
}

func (c *CachedCatalogRepository) CreateVehicle(vehicle *domain.Vehicle) error {
	if err := c.next.CreateVehicle(vehicle); err != nil {
		return err
	}
	c.invalidate(domain.KindVehicle, 0)
	return nil
}

func (c *CachedCatalogRepository) FindVehicleByID(id uint) (*domain.Vehicle, error) {
	var cached domain.Vehicle
	if c.getCached(cacheKey(domain.KindVehicle, id), &cached) {
		return &cached, nil
	}
	vehicle, err := c.next.FindVehicleByID(id)
	if err != nil {
		return nil, err
	}
	c.setCached(cacheKey(domain.KindVehicle, id), vehicle)
	return vehicle, nil
}

func (c *CachedCatalogRepository) FindAllVehicles() ([]domain.Vehicle, error) {
	var cached []domain.Vehicle
	if c.getCached(cacheListKey(domain.KindVehicle), &cached) {
		return cached, nil
	}
	vehicles, err := c.next.FindAllVehicles()
	if err != nil {
		return nil, err
	}
	c.setCached(cacheListKey(domain.KindVehicle), vehicles)
	return vehicles, nil
}

func (c *CachedCatalogRepository) DeleteVehicle(id uint) error {
	if err := c.next.DeleteVehicle(id); err != nil {
		return err
	}
	c.invalidate(domain.KindVehicle, id)
	return nil
}
