package handler

import (
	"tourguard/internal/domain/entity"
	domainerrors "tourguard/internal/domain/errors"

	"github.com/google/uuid"
)

// resolveTourist picks the tourist a request acts on. Tourists always act on
// themselves; admins may name another tourist.
func resolveTourist(actor entity.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if requested == nil || *requested == actor.UserID {
		return actor.UserID, nil
	}
	if !actor.IsAdmin() {
		return uuid.Nil, domainerrors.ErrForbidden.WithDetails("tourists may only report for themselves")
	}

	return *requested, nil
}
