package repository

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/user/domain"
)

func newTestRepo(t *testing.T) (*GormUserRepository, *gorm.DB) {
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
	// one connection so the in-memory database is shared
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.User{}, &favdomain.Favorite{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormUserRepository(db), db
}

func TestCreateAndFindByUsername(t *testing.T) {
	repo, _ := newTestRepo(t)

	user := &domain.User{Username: "luke", Password: "hashed"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a generated id")
	}

	found, err := repo.FindByUsername("luke")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, found.ID)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByID(999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.Create(&domain.User{Username: "luke", Password: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(&domain.User{Username: "luke", Password: "b"}); err == nil {
		t.Error("expected unique constraint violation")
	}
}

func TestDeleteRemovesOwnedFavorites(t *testing.T) {
	repo, db := newTestRepo(t)

	user := &domain.User{Username: "luke", Password: "a"}
	other := &domain.User{Username: "han", Password: "b"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	planetID := uint(1)
	rows := []favdomain.Favorite{
		{UserID: user.ID, PlanetID: &planetID},
		{UserID: user.ID, PlanetID: &planetID},
		{UserID: other.ID, PlanetID: &planetID},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed favorite: %v", err)
		}
	}

	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.FindByID(user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected deleted user to be gone, got %v", err)
	}

	var remaining int64
	if err := db.Model(&favdomain.Favorite{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count favorites: %v", err)
	}
	if remaining != 1 {
		t.Errorf("expected only the other user's favorite to survive, got %d rows", remaining)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.Delete(999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.Create(&domain.User{Username: "luke", Password: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(&domain.User{Username: "han", Password: "b"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 users, got %d", count)
	}
}
