package v1

import (
	"errors"
	"net/http"

	"github.com/split-star/backend/internal/models"
	"github.com/split-star/backend/internal/split"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, split.ErrMemberNotFound) {
		return http.StatusNotFound
	}

	// The request is valid, but the state of the split does not allow it
	if errors.Is(err, split.ErrSplitNotMutable) || errors.Is(err, split.ErrInvalidTransition) || errors.Is(err, split.ErrOwedBelowPaid) || errors.Is(err, models.ErrSplitVersionConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Split errors
var (
	errSplitStatusInvalid   = errors.New("the status of a new split must be draft or active")
	errSplitMethodInvalid   = errors.New("the specified split method is invalid")
	errSplitStatusFilter    = errors.New("the specified split status is invalid")
	errMemberValueAmbiguous = errors.New("only one of amount, percentage and shares can be set for a member")
	errMemberIDMissing      = errors.New("the id of a member must not be empty")
)
