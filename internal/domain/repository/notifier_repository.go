package repository

import (
	"context"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// NotifierRepository defines the interface for the report notification
// channel.
type NotifierRepository interface {
	// Configured reports whether the notifier has everything it needs to
	// send. An unconfigured notifier is skipped, never an error.
	Configured() bool

	// SendReport sends the run summary and records to the configured
	// receiver.
	SendReport(ctx context.Context, summary entity.RunSummary, records []entity.SnapshotRecord) error
}
