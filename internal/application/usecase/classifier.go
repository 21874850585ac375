package usecase

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// AgeInDays returns the age of a snapshot in whole days, truncated. The
// caller supplies a single run-scoped "now" so every snapshot in the same
// run is measured against the same instant.
func AgeInDays(created, now time.Time) int {
	return int(now.UTC().Sub(created.UTC()).Hours() / 24)
}

// EstimateMonthlyCost returns the estimated monthly cost in USD for a
// snapshot of the given size, rounded to 2 decimal places.
func EstimateMonthlyCost(sizeGB int32, ratePerGB float64) float64 {
	return round2(float64(sizeGB) * ratePerGB)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Classifier decide o destino de cada snapshot: nenhum, arquivar no Glacier,
// ou deletar. Falhas dos colaboradores rebaixam a ação para no-op e a
// classificação continua.
type Classifier struct {
	cfg       types.ScanConfig
	snapshots repository.SnapshotRepository
	archiver  repository.ArchiveRepository
	logger    zerolog.Logger
}

// NewClassifier creates a new snapshot classifier.
func NewClassifier(
	cfg types.ScanConfig,
	snapshots repository.SnapshotRepository,
	archiver repository.ArchiveRepository,
	logger zerolog.Logger,
) *Classifier {
	return &Classifier{
		cfg:       cfg,
		snapshots: snapshots,
		archiver:  archiver,
		logger:    logger,
	}
}

// Classify processa um único snapshot e produz o registro imutável do
// resultado. O snapshot começa ACTIVE/NONE; quando a idade ultrapassa a
// política de retenção, o arquivamento e a exclusão são tentados de forma
// independente, e a exclusão bem-sucedida prevalece sobre o arquivamento.
func (c *Classifier) Classify(ctx context.Context, raw entity.RawSnapshot, now time.Time) entity.SnapshotRecord {
	ageDays := AgeInDays(raw.StartTime, now)
	estimatedCost := EstimateMonthlyCost(raw.SizeGB, c.cfg.CostPerGBMonth)

	status := entity.StatusActive
	action := entity.ActionNone

	if ageDays > c.cfg.RetentionDays {
		if c.cfg.GlacierArchiveEnabled {
			if archived := c.tryArchive(ctx, raw); archived {
				status = entity.StatusArchived
				action = entity.ActionArchivedToGlacier
			}
		}

		if c.cfg.AutoDeleteEnabled {
			// A exclusão roda depois do arquivamento e, se bem-sucedida,
			// sobrescreve o status ARCHIVED.
			if deleted := c.tryDelete(ctx, raw); deleted {
				status = entity.StatusDeleted
				action = entity.ActionDeleted
			}
		}
	}

	volumeID := raw.VolumeID
	if volumeID == "" {
		volumeID = "N/A"
	}

	return entity.SnapshotRecord{
		SnapshotID:    raw.SnapshotID,
		VolumeID:      volumeID,
		Region:        raw.Region,
		CreatedAt:     raw.StartTime.UTC(),
		AgeDays:       ageDays,
		SizeGB:        raw.SizeGB,
		Description:   raw.Description,
		Status:        status,
		ActionTaken:   action,
		EstimatedCost: estimatedCost,
		ProcessedAt:   now,
	}
}

func (c *Classifier) tryArchive(ctx context.Context, raw entity.RawSnapshot) bool {
	if c.cfg.DryRun {
		c.logger.Info().
			Str("snapshot_id", raw.SnapshotID).
			Str("region", raw.Region).
			Msg("dry-run: would archive snapshot to Glacier")
		return false
	}

	result, err := c.archiver.ArchiveSnapshot(ctx, entity.ArchiveRequest{
		SnapshotID: raw.SnapshotID,
		Region:     raw.Region,
		SizeGB:     raw.SizeGB,
		CreatedAt:  raw.StartTime,
	})
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("snapshot_id", raw.SnapshotID).
			Msg("archive failed, snapshot remains active")
		return false
	}
	if !result.Success {
		c.logger.Warn().
			Str("snapshot_id", raw.SnapshotID).
			Str("reason", result.Reason).
			Msg("archive not performed, snapshot remains active")
		return false
	}

	c.logger.Info().
		Str("snapshot_id", raw.SnapshotID).
		Str("archive_id", result.ArchiveID).
		Msg("snapshot metadata archived to Glacier")
	return true
}

func (c *Classifier) tryDelete(ctx context.Context, raw entity.RawSnapshot) bool {
	if c.cfg.DryRun {
		c.logger.Info().
			Str("snapshot_id", raw.SnapshotID).
			Str("region", raw.Region).
			Msg("dry-run: would delete snapshot")
		return false
	}

	if err := c.snapshots.DeleteSnapshot(ctx, raw.SnapshotID, raw.Region); err != nil {
		c.logger.Warn().
			Err(err).
			Str("snapshot_id", raw.SnapshotID).
			Msg("delete failed, status unchanged")
		return false
	}

	c.logger.Info().
		Str("snapshot_id", raw.SnapshotID).
		Str("region", raw.Region).
		Msg("snapshot deleted")
	return true
}
