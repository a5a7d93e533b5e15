// Package permissions implements the role and ownership predicates gating each
// operation. Predicates are plain functions over an Actor and a resource
// reference so they can be tested without any transport context; the auth
// middleware builds the Actor from validated JWT claims and handlers apply the
// predicate that matches the resource. When several predicates apply to one
// operation, all of them must pass.
package permissions

import (
	"context"

	"airtech/shared/constant"
	"airtech/shared/failure"
)

// Actor is the authenticated (or anonymous) principal performing a request.
type Actor struct {
	ID            string
	Role          string
	Authenticated bool
}

// FromContext rebuilds the Actor placed in the request context by the auth
// middleware. An absent user ID means the request never passed authentication.
func FromContext(ctx context.Context) Actor {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{
		ID:            userID,
		Role:          role,
		Authenticated: userID != constant.Empty,
	}
}

// IsAdmin reports whether the actor carries the administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// AnonymousOnly permits the operation only for unauthenticated actors. Used to
// gate registration and login so a logged-in user cannot re-register.
func AnonymousOnly(actor Actor) error {
	if actor.Authenticated {
		return failure.Forbidden(constant.MessageAlreadyAuthenticated) //nolint:wrapcheck
	}

	return nil
}

// AdminOrReadOnly permits reads for any authenticated actor and writes only
// for administrators. Applied to flight mutation.
func AdminOrReadOnly(actor Actor, write bool) error {
	if !actor.Authenticated {
		return failure.Forbidden("authentication required") //nolint:wrapcheck
	}

	if write && !actor.IsAdmin() {
		return failure.Forbidden("You must be an administrator to change this content.") //nolint:wrapcheck
	}

	return nil
}

// OwnerOrReadOnly permits reads for any authenticated actor and writes only
// for the owner of the resource. Applied to booking mutation; administrators
// get no override here.
func OwnerOrReadOnly(actor Actor, ownerID string, write bool) error {
	if !actor.Authenticated {
		return failure.Forbidden("authentication required") //nolint:wrapcheck
	}

	if write && actor.ID != ownerID {
		return failure.ResourceRestrictedError
	}

	return nil
}
