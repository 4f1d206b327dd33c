package repository

import (
	"errors"
	"testing"

	"github.com/tair/starwars-api/internal/catalog/domain"
)

// Without a Redis client the decorator must behave exactly like the
// repository it wraps.
func TestCachedRepositoryWithoutRedis(t *testing.T) {
	inner, _ := newTestRepo(t)
	cached := NewCachedCatalogRepository(inner, nil)

	planet := &domain.Planet{Name: "Hoth", Climate: strptr("frozen")}
	if err := cached.CreatePlanet(planet); err != nil {
		t.Fatalf("CreatePlanet: %v", err)
	}

	found, err := cached.FindPlanetByID(planet.ID)
	if err != nil {
		t.Fatalf("FindPlanetByID: %v", err)
	}
	if found.Name != "Hoth" {
		t.Errorf("expected name Hoth, got %q", found.Name)
	}

	all, err := cached.FindAllPlanets()
	if err != nil {
		t.Fatalf("FindAllPlanets: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 planet, got %d", len(all))
	}

	if err := cached.DeletePlanet(planet.ID); err != nil {
		t.Fatalf("DeletePlanet: %v", err)
	}
	if _, err := cached.FindPlanetByID(planet.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
