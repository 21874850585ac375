package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

type fakeScanLog struct {
	records    []entity.SnapshotRecord
	summaries  []entity.RunSummary
	recordErr  error
	summaryErr error
	queryErr   error
}

func (f *fakeScanLog) LogRecord(_ context.Context, record entity.SnapshotRecord) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeScanLog) LogSummary(_ context.Context, summary entity.RunSummary) error {
	if f.summaryErr != nil {
		return f.summaryErr
	}
	f.summaries = append(f.summaries, summary)
	return nil
}

func (f *fakeScanLog) QueryOldSnapshots(context.Context, int) ([]entity.SnapshotRecord, error) {
	return f.records, f.queryErr
}

type fakeNotifier struct {
	configured bool
	sendErr    error
	sent       int
}

func (f *fakeNotifier) Configured() bool { return f.configured }

func (f *fakeNotifier) SendReport(context.Context, entity.RunSummary, []entity.SnapshotRecord) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent++
	return nil
}

func newTestUseCase(repo *fakeSnapshotRepo, archiver *fakeArchiver, scanLog *fakeScanLog, notifier *fakeNotifier) *ScanUseCase {
	return NewScanUseCase(repo, archiver, scanLog, notifier, zerolog.Nop())
}

func TestRunFailsWithoutRegions(t *testing.T) {
	uc := newTestUseCase(&fakeSnapshotRepo{}, &fakeArchiver{}, &fakeScanLog{}, &fakeNotifier{})

	_, err := uc.Run(context.Background(), types.ScanConfig{RetentionDays: 90})
	assert.ErrorIs(t, err, types.ErrNoRegionsConfigured)
}

func TestRunSingleFreshSnapshot(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(10, now)},
		},
	}
	scanLog := &fakeScanLog{}
	uc := newTestUseCase(repo, &fakeArchiver{}, scanLog, &fakeNotifier{})

	result, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.TotalSnapshots)
	assert.Equal(t, 0, result.Summary.OldSnapshotsCount)
	assert.Len(t, scanLog.records, 1)
	assert.Len(t, scanLog.summaries, 1)
}

func TestRunDeletesOldSnapshot(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()
	cfg.AutoDeleteEnabled = true

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(120, now)},
		},
	}
	uc := newTestUseCase(repo, &fakeArchiver{}, &fakeScanLog{}, &fakeNotifier{})

	result, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, entity.StatusDeleted, result.Records[0].Status)
	assert.InDelta(t, 5.00, result.Records[0].EstimatedCost, 0.0001)
	assert.Equal(t, 1, result.Summary.DeletedCount)
	assert.InDelta(t, 5.00, result.Summary.EstimatedSavingsUSD, 0.0001)
}

func TestRunContinuesWhenRegionFails(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()
	cfg.Regions = []string{"ap-south-1", "us-east-1"}

	usEastRaw := rawSnapshot(10, now)
	usEastRaw.Region = "us-east-1"

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"us-east-1": {usEastRaw},
		},
		listErr: map[string]error{
			"ap-south-1": errors.New("UnauthorizedOperation"),
		},
	}
	uc := newTestUseCase(repo, &fakeArchiver{}, &fakeScanLog{}, &fakeNotifier{})

	result, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.TotalSnapshots)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "us-east-1", result.Records[0].Region)
}

func TestRunSucceedsWithUnconfiguredNotifier(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(10, now)},
		},
	}
	notifier := &fakeNotifier{configured: false}
	uc := newTestUseCase(repo, &fakeArchiver{}, &fakeScanLog{}, notifier)

	_, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Zero(t, notifier.sent)
}

func TestRunSendsReportWhenConfigured(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(10, now)},
		},
	}
	notifier := &fakeNotifier{configured: true}
	uc := newTestUseCase(repo, &fakeArchiver{}, &fakeScanLog{}, notifier)

	_, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.sent)
}

func TestRunAbsorbsBestEffortFailures(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(120, now)},
		},
	}
	scanLog := &fakeScanLog{
		recordErr:  errors.New("table missing"),
		summaryErr: errors.New("table missing"),
	}
	notifier := &fakeNotifier{configured: true, sendErr: errors.New("smtp down")}
	uc := newTestUseCase(repo, &fakeArchiver{}, scanLog, notifier)

	result, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.TotalSnapshots)
}

func TestRunRecordsShareSingleNow(t *testing.T) {
	now := time.Now().UTC()
	cfg := testScanConfig()

	repo := &fakeSnapshotRepo{
		raws: map[string][]entity.RawSnapshot{
			"ap-south-1": {rawSnapshot(10, now), rawSnapshot(50, now), rawSnapshot(100, now)},
		},
	}
	uc := newTestUseCase(repo, &fakeArchiver{}, &fakeScanLog{}, &fakeNotifier{})

	result, err := uc.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	for _, rec := range result.Records[1:] {
		assert.Equal(t, result.Records[0].ProcessedAt, rec.ProcessedAt)
	}
	assert.Equal(t, result.Records[0].ProcessedAt, result.Summary.ScanDate)
}

func TestAccountIDDelegatesToSnapshotRepo(t *testing.T) {
	uc := newTestUseCase(&fakeSnapshotRepo{}, &fakeArchiver{}, &fakeScanLog{}, &fakeNotifier{})

	accountID, err := uc.AccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456789012", accountID)
}

func TestHistoryDelegatesToScanLog(t *testing.T) {
	scanLog := &fakeScanLog{records: []entity.SnapshotRecord{{SnapshotID: "snap-old"}}}
	uc := newTestUseCase(&fakeSnapshotRepo{}, &fakeArchiver{}, scanLog, &fakeNotifier{})

	records, err := uc.History(context.Background(), 90)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "snap-old", records[0].SnapshotID)
}

func TestInitiateRetrievalDelegatesToArchiver(t *testing.T) {
	archiver := &fakeArchiver{job: entity.RetrievalJob{JobID: "job-1", ArchiveID: "arch-1"}}
	uc := newTestUseCase(&fakeSnapshotRepo{}, archiver, &fakeScanLog{}, &fakeNotifier{})

	job, err := uc.InitiateRetrieval(context.Background(), "arch-1", "ap-south-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID)
}
