package repository

import (
	"context"

	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Insert stores a new message and returns it with the store-assigned id
	// and created_at. Assigned ids are strictly increasing and never reused.
	Insert(ctx context.Context, name, email, message string) (*model.ContactMessage, error)

	// ListDescending returns every stored message, newest id first.
	ListDescending(ctx context.Context) ([]*model.ContactMessage, error)
}
