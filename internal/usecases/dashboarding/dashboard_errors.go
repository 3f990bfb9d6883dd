package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrNoNextPage      = errors.New("already at the last page")
	ErrNoPreviousPage  = errors.New("already at the first page")
	ErrDashboardClosed = errors.New("dashboard is closed")
)

// DashboardError carrega o código de API junto com o erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
