package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidStatus      = errors.New("models: invalid driver status")
	ErrMissingDocuments   = errors.New("models: driver documents incomplete")
	ErrNoSession          = errors.New("models: no active session")
)
