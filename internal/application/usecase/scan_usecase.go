package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// ScanUseCase drives one full snapshot expiry run across the configured
// regions. The configuration is passed into Run so the same wired use case
// serves both the CLI (flag overrides) and the Lambda boundary.
type ScanUseCase struct {
	snapshots repository.SnapshotRepository
	archiver  repository.ArchiveRepository
	scanLog   repository.ScanLogRepository
	notifier  repository.NotifierRepository
	logger    zerolog.Logger
}

// NewScanUseCase creates a new scan use case.
func NewScanUseCase(
	snapshots repository.SnapshotRepository,
	archiver repository.ArchiveRepository,
	scanLog repository.ScanLogRepository,
	notifier repository.NotifierRepository,
	logger zerolog.Logger,
) *ScanUseCase {
	return &ScanUseCase{
		snapshots: snapshots,
		archiver:  archiver,
		scanLog:   scanLog,
		notifier:  notifier,
		logger:    logger,
	}
}

// Run executa o scan completo: varre cada região em sequência, classifica
// cada snapshot, registra cada resultado no log durável (melhor esforço),
// agrega o resumo e dispara a notificação. Falhas abaixo do limite da
// invocação são absorvidas e logadas; somente um erro de configuração
// aborta a execução.
func (uc *ScanUseCase) Run(ctx context.Context, cfg types.ScanConfig) (entity.ScanResult, error) {
	if len(cfg.Regions) == 0 {
		return entity.ScanResult{}, types.ErrNoRegionsConfigured
	}

	now := time.Now().UTC()

	uc.logger.Info().
		Int("retention_days", cfg.RetentionDays).
		Bool("auto_delete", cfg.AutoDeleteEnabled).
		Bool("glacier_archive", cfg.GlacierArchiveEnabled).
		Bool("dry_run", cfg.DryRun).
		Strs("regions", cfg.Regions).
		Msg("starting snapshot expiry scan")

	classifier := NewClassifier(cfg, uc.snapshots, uc.archiver, uc.logger)

	var records []entity.SnapshotRecord
	for _, region := range cfg.Regions {
		raws, err := uc.snapshots.ListSnapshots(ctx, region)
		if err != nil {
			// Uma região inacessível contribui com zero registros; as
			// demais seguem normalmente.
			uc.logger.Warn().Err(err).Str("region", region).Msg("failed to scan region, skipping")
			continue
		}

		uc.logger.Info().Str("region", region).Int("count", len(raws)).Msg("snapshots found")

		for _, raw := range raws {
			record := classifier.Classify(ctx, raw, now)
			records = append(records, record)

			if err := uc.scanLog.LogRecord(ctx, record); err != nil {
				uc.logger.Warn().Err(err).Str("snapshot_id", record.SnapshotID).Msg("failed to log snapshot record")
			}
		}
	}

	summary := Summarize(records, cfg, now)

	uc.logger.Info().
		Int("total", summary.TotalSnapshots).
		Int("old", summary.OldSnapshotsCount).
		Int("deleted", summary.DeletedCount).
		Int("archived", summary.ArchivedCount).
		Float64("savings_usd", summary.EstimatedSavingsUSD).
		Msg("scan complete")

	if err := uc.scanLog.LogSummary(ctx, summary); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to log run summary")
	}

	if uc.notifier.Configured() {
		if err := uc.notifier.SendReport(ctx, summary, records); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to send report notification")
		}
	} else {
		uc.logger.Info().Msg("notifier not configured, skipping email report")
	}

	return entity.ScanResult{Summary: summary, Records: records}, nil
}

// AccountID retorna o ID da conta AWS das credenciais atuais, para exibição
// no cabeçalho do relatório.
func (uc *ScanUseCase) AccountID(ctx context.Context) (string, error) {
	return uc.snapshots.GetAccountID(ctx)
}

// History retorna os registros do log durável mais antigos que o número de
// dias informado.
func (uc *ScanUseCase) History(ctx context.Context, days int) ([]entity.SnapshotRecord, error) {
	return uc.scanLog.QueryOldSnapshots(ctx, days)
}

// InitiateRetrieval inicia a recuperação de um arquivo no vault. A conclusão
// do job é assíncrona e fica fora do escopo desta invocação.
func (uc *ScanUseCase) InitiateRetrieval(ctx context.Context, archiveID, region string) (entity.RetrievalJob, error) {
	return uc.archiver.InitiateRetrieval(ctx, archiveID, region)
}
