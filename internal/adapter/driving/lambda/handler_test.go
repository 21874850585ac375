package lambda

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/application/usecase"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

type stubSnapshots struct {
	raws []entity.RawSnapshot
	err  error
}

func (s *stubSnapshots) ListSnapshots(_ context.Context, _ string) ([]entity.RawSnapshot, error) {
	return s.raws, s.err
}

func (s *stubSnapshots) DeleteSnapshot(_ context.Context, _, _ string) error { return nil }

func (s *stubSnapshots) GetAccountID(_ context.Context) (string, error) { return "123456789012", nil }

type stubArchiver struct{}

func (s *stubArchiver) ArchiveSnapshot(_ context.Context, req entity.ArchiveRequest) (entity.ArchiveResult, error) {
	return entity.ArchiveResult{Success: true, ArchiveID: "arc-1", SnapshotID: req.SnapshotID}, nil
}

func (s *stubArchiver) InitiateRetrieval(_ context.Context, _, _ string) (entity.RetrievalJob, error) {
	return entity.RetrievalJob{}, nil
}

type stubScanLog struct{}

func (s *stubScanLog) LogRecord(_ context.Context, _ entity.SnapshotRecord) error { return nil }

func (s *stubScanLog) LogSummary(_ context.Context, _ entity.RunSummary) error { return nil }

func (s *stubScanLog) QueryOldSnapshots(_ context.Context, _ int) ([]entity.SnapshotRecord, error) {
	return nil, nil
}

type stubNotifier struct{}

func (s *stubNotifier) Configured() bool { return false }

func (s *stubNotifier) SendReport(_ context.Context, _ entity.RunSummary, _ []entity.SnapshotRecord) error {
	return nil
}

func newTestHandler(snapshots *stubSnapshots, cfg types.ScanConfig) *Handler {
	logger := zerolog.Nop()
	uc := usecase.NewScanUseCase(snapshots, &stubArchiver{}, &stubScanLog{}, &stubNotifier{}, logger)
	return NewHandler(uc, cfg, logger)
}

func TestHandleReturnsSummaryEnvelope(t *testing.T) {
	snapshots := &stubSnapshots{
		raws: []entity.RawSnapshot{
			{
				SnapshotID: "snap-0abc123",
				VolumeID:   "vol-0def456",
				Region:     "ap-south-1",
				StartTime:  time.Now().UTC().AddDate(0, 0, -200),
				SizeGB:     100,
			},
		},
	}
	cfg := types.ScanConfig{
		RetentionDays:  90,
		Regions:        []string{"ap-south-1"},
		CostPerGBMonth: 0.05,
	}

	resp, err := newTestHandler(snapshots, cfg).Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary entity.RunSummary
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &summary))
	assert.Equal(t, 1, summary.TotalSnapshots)
	assert.Equal(t, 1, summary.OldSnapshotsCount)
	assert.Equal(t, 90, summary.RetentionPolicyDays)
	assert.InDelta(t, 5.00, summary.OldSnapshotsCostUSD, 0.0001)
}

func TestHandleReturnsErrorEnvelopeOnConfigError(t *testing.T) {
	cfg := types.ScanConfig{RetentionDays: 90}

	resp, err := newTestHandler(&stubSnapshots{}, cfg).Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, types.ErrNoRegionsConfigured.Error(), body["error"])
}

func TestHandleIgnoresEventPayload(t *testing.T) {
	cfg := types.ScanConfig{
		RetentionDays:  90,
		Regions:        []string{"ap-south-1"},
		CostPerGBMonth: 0.05,
	}

	resp, err := newTestHandler(&stubSnapshots{}, cfg).Handle(context.Background(), json.RawMessage(`{"detail":"cron"}`))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
