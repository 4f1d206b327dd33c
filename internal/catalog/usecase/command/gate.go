package command

import (
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// requireAdmin loads the acting user and verifies the admin flag. It is the
// precondition for every catalog mutation; reads stay ungated.
func requireAdmin(users userdomain.UserRepository, actorID uint) error {
	actor, err := users.FindByID(actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin {
		return userdomain.ErrForbidden
	}
	return nil
}
