package repository

import (
	"context"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// ArchiveRepository defines the interface for the cold-archive vault.
type ArchiveRepository interface {
	// ArchiveSnapshot writes the snapshot's metadata to the vault. A soft
	// failure (e.g. missing vault) comes back as an unsuccessful result, not
	// an error.
	ArchiveSnapshot(ctx context.Context, req entity.ArchiveRequest) (entity.ArchiveResult, error)

	// InitiateRetrieval starts a bulk retrieval job for a previously written
	// archive. The job completes out of band.
	InitiateRetrieval(ctx context.Context, archiveID, region string) (entity.RetrievalJob, error)
}
