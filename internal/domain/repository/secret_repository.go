package repository

import "context"

// SecretRepository defines the interface for retrieving secrets.
type SecretRepository interface {
	// GetSecret returns the secret value stored under name.
	GetSecret(ctx context.Context, name string) (string, error)
}
