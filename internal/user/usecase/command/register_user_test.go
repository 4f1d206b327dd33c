package command

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/pkg/auth"
)

func newTestRepo(t *testing.T) *repository.GormUserRepository {
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

	if err := db.AutoMigrate(&domain.User{}, &favdomain.Favorite{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repository.NewGormUserRepository(db)
}

func TestRegisterUser(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{Username: "luke", Password: "secret"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a persisted user")
	}
	if user.IsAdmin {
		t.Error("registered users must never be admins")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")); err != nil {
		t.Error("stored password does not verify against the original")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewRegisterUserHandler(repo)

	if _, err := handler.Handle(RegisterUserCommand{Password: "secret"}); err == nil {
		t.Error("expected error for missing username")
	}
	if _, err := handler.Handle(RegisterUserCommand{Username: "luke"}); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewRegisterUserHandler(repo)

	if _, err := handler.Handle(RegisterUserCommand{Username: "luke", Password: "a"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := handler.Handle(RegisterUserCommand{Username: "luke", Password: "b"}); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestLoginUser(t *testing.T) {
	repo := newTestRepo(t)
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	registered, err := register.Handle(RegisterUserCommand{Username: "luke", Password: "secret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	response, err := login.Handle(LoginUserCommand{Username: "luke", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := auth.ValidateToken(response.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("expected token for user %d, got %d", registered.ID, claims.UserID)
	}
	if claims.IsAdmin {
		t.Error("expected non-admin claims")
	}
}

func TestLoginUserBadCredentials(t *testing.T) {
	repo := newTestRepo(t)
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	if _, err := register.Handle(RegisterUserCommand{Username: "luke", Password: "secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := login.Handle(LoginUserCommand{Username: "luke", Password: "wrong"}); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := login.Handle(LoginUserCommand{Username: "ghost", Password: "secret"}); err == nil {
		t.Error("expected error for unknown user")
	}
}
