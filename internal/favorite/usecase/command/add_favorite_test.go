package command

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogdomain "github.com/tair/starwars-api/internal/catalog/domain"
	catalogrepository "github.com/tair/starwars-api/internal/catalog/repository"
	"github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/favorite/repository"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	userrepository "github.com/tair/starwars-api/internal/user/repository"
)

type fixture struct {
	users     *userrepository.GormUserRepository
	catalog   *catalogrepository.GormCatalogRepository
	favorites *repository.GormFavoriteRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Character{}, &catalogdomain.Planet{}, &catalogdomain.Vehicle{},
		&domain.Favorite{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return &fixture{
		users:     userrepository.NewGormUserRepository(db),
		catalog:   catalogrepository.NewGormCatalogRepository(db),
		favorites: repository.NewGormFavoriteRepository(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *userdomain.User {
	t.Helper()
	u := &userdomain.User{Username: username, Password: "hashed"}
	if err := f.users.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *fixture) planet(t *testing.T, name string) *catalogdomain.Planet {
	t.Helper()
	p := &catalogdomain.Planet{Name: name}
	if err := f.catalog.CreatePlanet(p); err != nil {
		t.Fatalf("create planet: %v", err)
	}
	return p
}

func TestAddFavorite(t *testing.T) {
	f := newFixture(t)
	handler := NewAddFavoriteHandler(f.users, f.catalog, f.favorites)

	user := f.user(t, "luke")
	planet := f.planet(t, "Dagobah")

	fav, err := handler.Handle(AddFavoriteCommand{
		UserID:    user.ID,
		Selection: domain.Selection{Kind: catalogdomain.KindPlanet, EntityID: planet.ID},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if fav.PlanetID == nil || *fav.PlanetID != planet.ID {
		t.Errorf("expected planet reference %d, got %v", planet.ID, fav.PlanetID)
	}

	rows, err := f.favorites.FindByUser(user.ID)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(rows))
	}
}

func TestAddFavoriteRequiresUser(t *testing.T) {
	f := newFixture(t)
	handler := NewAddFavoriteHandler(f.users, f.catalog, f.favorites)

	planet := f.planet(t, "Dagobah")
	_, err := handler.Handle(AddFavoriteCommand{
		UserID:    999,
		Selection: domain.Selection{Kind: catalogdomain.KindPlanet, EntityID: planet.ID},
	})
	if !errors.Is(err, userdomain.ErrNotFound) {
		t.Errorf("expected user ErrNotFound, got %v", err)
	}
}

func TestAddFavoriteRequiresEntity(t *testing.T) {
	f := newFixture(t)
	handler := NewAddFavoriteHandler(f.users, f.catalog, f.favorites)

	user := f.user(t, "luke")
	_, err := handler.Handle(AddFavoriteCommand{
		UserID:    user.ID,
		Selection: domain.Selection{Kind: catalogdomain.KindVehicle, EntityID: 999},
	})
	if !errors.Is(err, catalogdomain.ErrNotFound) {
		t.Errorf("expected catalog ErrNotFound, got %v", err)
	}

	rows, err := f.favorites.FindByUser(user.ID)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no ledger rows after failed add, got %d", len(rows))
	}
}

func TestRemoveFavorite(t *testing.T) {
	f := newFixture(t)
	add := NewAddFavoriteHandler(f.users, f.catalog, f.favorites)
	remove := NewRemoveFavoriteHandler(f.users, f.favorites)

	user := f.user(t, "luke")
	planet := f.planet(t, "Dagobah")
	sel := domain.Selection{Kind: catalogdomain.KindPlanet, EntityID: planet.ID}

	if _, err := add.Handle(AddFavoriteCommand{UserID: user.ID, Selection: sel}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := remove.Handle(RemoveFavoriteCommand{UserID: user.ID, Selection: sel}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	rows, err := f.favorites.FindByUser(user.ID)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty ledger, got %d rows", len(rows))
	}
}

func TestRemoveFavoriteRequiresUser(t *testing.T) {
	f := newFixture(t)
	remove := NewRemoveFavoriteHandler(f.users, f.favorites)

	err := remove.Handle(RemoveFavoriteCommand{
		UserID:    999,
		Selection: domain.Selection{Kind: catalogdomain.KindPlanet, EntityID: 1},
	})
	if !errors.Is(err, userdomain.ErrNotFound) {
		t.Errorf("expected user ErrNotFound, got %v", err)
	}
}

func TestRemoveFavoriteNeverAdded(t *testing.T) {
	f := newFixture(t)
	remove := NewRemoveFavoriteHandler(f.users, f.favorites)

	user := f.user(t, "luke")
	err := remove.Handle(RemoveFavoriteCommand{
		UserID:    user.ID,
		Selection: domain.Selection{Kind: catalogdomain.KindVehicle, EntityID: 4},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected favorite ErrNotFound, got %v", err)
	}
}
