package services

import "github.com/catmap/backend/internal/models"

// Authorize decides whether the caller may mutate or delete a record owned
// by ownerID. Pure function, never touches storage. A nil caller is an
// anonymous request. The caller kinds are handled exhaustively: anonymous,
// admin, owner, and everyone else.
func Authorize(ownerID int, caller *models.Caller) error {
	switch {
	case caller == nil:
		return models.NewUnauthenticatedError("Not authenticated")
	case caller.Role == models.RoleAdmin:
		return nil
	case caller.ID == ownerID:
		return nil
	default:
		return models.NewForbiddenError("Not authorized")
	}
}
