// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"alertradar/internal/domain/entity"
	"alertradar/internal/errors"
)

// Domain-specific errors for recipient lookups.
var (
	// ErrRecipientNotFound is returned when a profile does not exist (deleted or never created).
	ErrRecipientNotFound = errors.New("recipient not found")
)

// RecipientRepository is the read-only recipient directory backed by the user profile collection.
type RecipientRepository interface {
	// FindRecipientByID retrieves a profile by ID. Returns ErrRecipientNotFound on a miss.
	FindRecipientByID(ctx context.Context, id string) (*entity.RecipientProfile, error)

	// FindPushEnabledRecipients scans every profile with push enabled, including those without a device token.
	FindPushEnabledRecipients(ctx context.Context) ([]*entity.RecipientProfile, error)
}
