package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrSplitVersionConflict      = errors.New("the split was changed by another request, please retry")
	ErrAllocationMemberNotUnique = errors.New("a member can only have one allocation per split")
	ErrCurrencyInvalid           = errors.New("the currency must be a valid ISO 4217 currency code")
)
