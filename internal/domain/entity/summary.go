package entity

import "time"

// RunSummary holds the aggregate statistics for one scan run.
type RunSummary struct {
	ScanDate              time.Time `json:"scan_date" dynamodbav:"scan_date"`
	RetentionPolicyDays   int       `json:"retention_policy_days" dynamodbav:"retention_policy_days"`
	RegionsScanned        []string  `json:"regions_scanned" dynamodbav:"regions_scanned"`
	TotalSnapshots        int       `json:"total_snapshots" dynamodbav:"total_snapshots"`
	OldSnapshotsCount     int       `json:"old_snapshots_count" dynamodbav:"old_snapshots_count"`
	DeletedCount          int       `json:"deleted_count" dynamodbav:"deleted_count"`
	ArchivedCount         int       `json:"archived_count" dynamodbav:"archived_count"`
	TotalEstimatedCostUSD float64   `json:"total_estimated_cost_usd" dynamodbav:"total_estimated_cost_usd"`
	OldSnapshotsCostUSD   float64   `json:"old_snapshots_cost_usd" dynamodbav:"old_snapshots_cost_usd"`
	EstimatedSavingsUSD   float64   `json:"estimated_savings_usd" dynamodbav:"estimated_savings_usd"`
	AutoDeleteEnabled     bool      `json:"auto_delete_enabled" dynamodbav:"auto_delete_enabled"`
	GlacierArchiveEnabled bool      `json:"glacier_archive_enabled" dynamodbav:"glacier_archive_enabled"`
}

// ScanResult is the full outcome of one scan run: the summary plus every
// per-snapshot record that produced it.
type ScanResult struct {
	Summary RunSummary       `json:"summary"`
	Records []SnapshotRecord `json:"records"`
}
