package command

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tair/starwars-api/internal/user/domain"
)

// RegisterUserCommand represents the command to register a user
type RegisterUserCommand struct {
	Username string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command. Registered users are never
// admins; admin accounts are provisioned out-of-band.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	if _, err := h.repo.FindByUsername(cmd.Username); err == nil {
		return nil, fmt.Errorf("username already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username: cmd.Username,
		Password: string(hashed),
		IsAdmin:  false,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}
