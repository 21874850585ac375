package repository

import (
	"context"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// SnapshotRepository defines the interface for EBS snapshot inventory and
// deletion across regions.
type SnapshotRepository interface {
	// ListSnapshots returns every snapshot owned by this account in the region.
	ListSnapshots(ctx context.Context, region string) ([]entity.RawSnapshot, error)

	// DeleteSnapshot deletes a snapshot. A snapshot that no longer exists is
	// not an error.
	DeleteSnapshot(ctx context.Context, snapshotID, region string) error

	// GetAccountID returns the AWS account ID of the current credentials.
	GetAccountID(ctx context.Context) (string, error)
}
