package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Account errors
var (
	ErrHandleTaken = errors.New("handle already exists")
	ErrHandleEmpty = errors.New("handle must not be empty")
	ErrAccountGone = errors.New("the account for this session does not exist")
)

// Reference data errors
var (
	ErrNameEmpty       = errors.New("name must not be empty")
	ErrProtectedPerson = errors.New("cannot delete default profile")
)

// Export errors
var (
	ErrInvalidRange = errors.New("start date cannot be after end date")
)
