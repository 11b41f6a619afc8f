package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("not signed in")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoSelection     = errors.New("nothing selected")
	ErrBusy            = errors.New("previous request still in progress")
)

// RedirectError is returned by a role guard when the signed-in user belongs on
// another dashboard.
type RedirectError struct {
	Role  Role
	Route string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("%s accounts use %s", e.Role, e.Route)
}
