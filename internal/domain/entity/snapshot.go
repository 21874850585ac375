package entity

import "time"

// SnapshotStatus is the lifecycle status of a snapshot after classification.
type SnapshotStatus string

const (
	StatusActive   SnapshotStatus = "ACTIVE"
	StatusArchived SnapshotStatus = "ARCHIVED"
	StatusDeleted  SnapshotStatus = "DELETED"
)

// ActionTaken is the action the classifier performed on a snapshot.
type ActionTaken string

const (
	ActionNone              ActionTaken = "NONE"
	ActionArchivedToGlacier ActionTaken = "ARCHIVED_TO_GLACIER"
	ActionDeleted           ActionTaken = "DELETED"
)

// RawSnapshot is a single inventory item as returned by the snapshot source,
// before any classification.
type RawSnapshot struct {
	SnapshotID  string
	VolumeID    string
	Region      string
	StartTime   time.Time
	SizeGB      int32
	Description string
}

// SnapshotRecord is the immutable result of classifying one snapshot.
// Field names match the DynamoDB report table attributes.
type SnapshotRecord struct {
	SnapshotID    string         `json:"SnapshotId" dynamodbav:"SnapshotId"`
	VolumeID      string         `json:"VolumeId" dynamodbav:"VolumeId"`
	Region        string         `json:"Region" dynamodbav:"Region"`
	CreatedAt     time.Time      `json:"CreatedAt" dynamodbav:"CreatedAt"`
	AgeDays       int            `json:"AgeDays" dynamodbav:"AgeDays"`
	SizeGB        int32          `json:"SizeGB" dynamodbav:"SizeGB"`
	Description   string         `json:"Description" dynamodbav:"Description"`
	Status        SnapshotStatus `json:"Status" dynamodbav:"Status"`
	ActionTaken   ActionTaken    `json:"ActionTaken" dynamodbav:"ActionTaken"`
	EstimatedCost float64        `json:"EstimatedCost" dynamodbav:"EstimatedCost"`
	ProcessedAt   time.Time      `json:"ProcessedAt" dynamodbav:"ProcessedAt"`
}
