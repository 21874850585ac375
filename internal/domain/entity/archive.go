package entity

import "time"

// ArchiveRequest identifies the snapshot whose metadata should be written to
// the cold-archive vault.
type ArchiveRequest struct {
	SnapshotID string
	Region     string
	SizeGB     int32
	CreatedAt  time.Time
}

// ArchiveResult is the typed outcome of a single archive attempt. A failed
// attempt is a value, not an error: the classifier decides what to do with it.
type ArchiveResult struct {
	Success    bool   `json:"success"`
	ArchiveID  string `json:"archive_id,omitempty"`
	SnapshotID string `json:"snapshot_id"`
	Vault      string `json:"vault,omitempty"`
	Reason     string `json:"error,omitempty"`
}

// RetrievalJob describes an initiated cold-archive retrieval. Retrievals are
// fire-and-forget; completion can take 12-48 hours.
type RetrievalJob struct {
	JobID     string `json:"job_id"`
	ArchiveID string `json:"archive_id"`
}
