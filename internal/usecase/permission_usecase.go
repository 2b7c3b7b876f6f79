package usecase

import (
	"fmt"

	"github.com/LavaJover/shvark-boost-service/internal/domain"
)

const (
	PermissionChat          = "canAccessChat"
	PermissionOrders        = "canModifyOrders"
	PermissionClientDetails = "canAccessClientDetails"
	PermissionAdmin         = "isAdmin"
)

// PermissionToggle is a request to flip a single permission field.
type PermissionToggle struct {
	Field string
	Value bool
}

// NormalizePermissions applies one toggle to a permission set under the
// cascade rule: enabling isAdmin enables the three base capabilities in the
// same step, and disabling any base capability while isAdmin is set drops
// isAdmin in the same step. Pure function; the result is always consistent.
func NormalizePermissions(current domain.Permissions, toggle PermissionToggle) (domain.Permissions, error) {
	next := current

	switch toggle.Field {
	case PermissionAdmin:
		next.IsAdmin = toggle.Value
		if toggle.Value {
			next.CanAccessChat = true
			next.CanModifyOrders = true
			next.CanAccessClientDetails = true
		}
	case PermissionChat:
		next.CanAccessChat = toggle.Value
		if !toggle.Value && current.IsAdmin {
			next.IsAdmin = false
		}
	case PermissionOrders:
		next.CanModifyOrders = toggle.Value
		if !toggle.Value && current.IsAdmin {
			next.IsAdmin = false
		}
	case PermissionClientDetails:
		next.CanAccessClientDetails = toggle.Value
		if !toggle.Value && current.IsAdmin {
			next.IsAdmin = false
		}
	default:
		ve := domain.NewValidationError()
		ve.Add("field", fmt.Sprintf("unknown permission field: %q", toggle.Field))
		return current, ve
	}

	return next, nil
}
