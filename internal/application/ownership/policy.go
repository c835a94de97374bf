// Package ownership enforces who may create or modify a cinema's
// resources, and whether a cinema is in a state that allows showtimes
// to be scheduled against it.
package ownership

import (
	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
	apperrors "github.com/Naveen2070/Hive-Movie/internal/pkg/errors"
)

// Principal is the authenticated caller, as extracted from the
// identity-issued access token by the HTTP middleware.
type Principal struct {
	UserID string
	Email  string
	IsAdmin bool
}

// CheckOwnership verifies that principal owns cinema, or is an admin.
// Admins bypass ownership for moderation and support workflows.
func CheckOwnership(principal Principal, cinema *entity.Cinema) error {
	if principal.IsAdmin {
		return nil
	}
	if cinema.OrganizerID != principal.UserID {
		return apperrors.ErrNotOwner()
	}
	return nil
}

// CheckApproved verifies that cinema has cleared admin approval. A
// pending or rejected cinema cannot accept new showtimes, even from
// its own organizer.
func CheckApproved(cinema *entity.Cinema) error {
	if !cinema.IsApproved() {
		return apperrors.ErrNotApproved()
	}
	return nil
}

// CheckAdmin verifies that principal holds the admin role, for
// operations with no owning resource to check against (e.g. approving
// a cinema's status transition).
func CheckAdmin(principal Principal) error {
	if !principal.IsAdmin {
		return apperrors.ErrForbidden("admin role required")
	}
	return nil
}
