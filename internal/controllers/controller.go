// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"time"

	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/config"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Tokens         *auth.TokenManager
	ExportLocation *time.Location // Default time zone for CSV exports
}

// New creates a Controller for the configuration.
func New(cfg config.Config) (Controller, error) {
	loc, err := cfg.ExportLocation()
	if err != nil {
		return Controller{}, err
	}

	return Controller{
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.TokenValidity),
		ExportLocation: loc,
	}, nil
}
