package repository

import (
	"context"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// ScanLogRepository defines the interface for the durable scan log.
type ScanLogRepository interface {
	// LogRecord persists one per-snapshot record.
	LogRecord(ctx context.Context, record entity.SnapshotRecord) error

	// LogSummary persists the run summary.
	LogSummary(ctx context.Context, summary entity.RunSummary) error

	// QueryOldSnapshots returns previously logged records older than the
	// given number of days.
	QueryOldSnapshots(ctx context.Context, olderThanDays int) ([]entity.SnapshotRecord, error)
}
