package usecase

import (
	"time"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// Summarize agrega a sequência de registros de um scan em estatísticas de
// resumo. É uma dobra pura e independente da ordem dos registros: usa apenas
// contagens e somas comutativas.
//
// Os custos por registro já chegam arredondados a 2 casas; o resumo soma
// esses valores arredondados e arredonda de novo na construção.
func Summarize(records []entity.SnapshotRecord, cfg types.ScanConfig, scanDate time.Time) entity.RunSummary {
	var oldCount, deletedCount, archivedCount int
	var totalCost, oldCost, savings float64

	for _, r := range records {
		totalCost += r.EstimatedCost

		if r.AgeDays > cfg.RetentionDays {
			oldCount++
			oldCost += r.EstimatedCost
		}
		if r.Status == entity.StatusDeleted {
			deletedCount++
			savings += r.EstimatedCost
		}
		if r.Status == entity.StatusArchived {
			archivedCount++
		}
	}

	return entity.RunSummary{
		ScanDate:              scanDate,
		RetentionPolicyDays:   cfg.RetentionDays,
		RegionsScanned:        cfg.Regions,
		TotalSnapshots:        len(records),
		OldSnapshotsCount:     oldCount,
		DeletedCount:          deletedCount,
		ArchivedCount:         archivedCount,
		TotalEstimatedCostUSD: round2(totalCost),
		OldSnapshotsCostUSD:   round2(oldCost),
		EstimatedSavingsUSD:   round2(savings),
		AutoDeleteEnabled:     cfg.AutoDeleteEnabled,
		GlacierArchiveEnabled: cfg.GlacierArchiveEnabled,
	}
}
