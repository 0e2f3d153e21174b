package identity

import (
	"errors"
	"net/http"
	"strconv"

	"prevoz/internal/entities"
)

// Заголовки выставляет сессионный шлюз, внутри периметра им доверяем.
const (
	HeaderAccountID   = "X-Account-ID"
	HeaderAccountRole = "X-Account-Role"
)

var (
	ErrMissingIdentity = errors.New("missing identity headers")
	ErrInvalidRole     = errors.New("invalid account role")
)

func FromRequest(r *http.Request) (entities.Actor, error) {
	idStr := r.Header.Get(HeaderAccountID)
	roleStr := r.Header.Get(HeaderAccountRole)
	if idStr == "" || roleStr == "" {
		return entities.Actor{}, ErrMissingIdentity
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, ErrMissingIdentity
	}

	role := entities.RoleType(roleStr)
	switch role {
	case entities.RoleShipper, entities.RoleDriver, entities.RoleAdmin:
	default:
		return entities.Actor{}, ErrInvalidRole
	}

	return entities.Actor{ID: id, Role: role}, nil
}
