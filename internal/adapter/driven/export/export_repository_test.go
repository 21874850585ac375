package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

func sampleResult() entity.ScanResult {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entity.ScanResult{
		Summary: entity.RunSummary{
			ScanDate:              time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
			RetentionPolicyDays:   90,
			RegionsScanned:        []string{"ap-south-1"},
			TotalSnapshots:        2,
			OldSnapshotsCount:     1,
			DeletedCount:          1,
			TotalEstimatedCostUSD: 7.50,
			OldSnapshotsCostUSD:   5.00,
			EstimatedSavingsUSD:   5.00,
		},
		Records: []entity.SnapshotRecord{
			{
				SnapshotID:    "snap-0abc123",
				VolumeID:      "vol-0def456",
				Region:        "ap-south-1",
				CreatedAt:     created,
				AgeDays:       178,
				SizeGB:        100,
				Description:   "nightly backup",
				Status:        entity.StatusDeleted,
				ActionTaken:   entity.ActionDeleted,
				EstimatedCost: 5.00,
			},
			{
				SnapshotID:    "snap-0fresh01",
				VolumeID:      "vol-0aaa111",
				Region:        "ap-south-1",
				CreatedAt:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
				AgeDays:       6,
				SizeGB:        50,
				Status:        entity.StatusActive,
				ActionTaken:   entity.ActionNone,
				EstimatedCost: 2.50,
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToCSV(sampleResult(), "report", dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), "report_"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Snapshot ID", rows[0][0])
	assert.Equal(t, "snap-0abc123", rows[1][0])
	assert.Equal(t, "178", rows[1][4])
	assert.Equal(t, "$5.00", rows[1][6])
	assert.Equal(t, "DELETED", rows[1][7])
	assert.Equal(t, "nightly backup", rows[1][9])
	assert.Equal(t, "snap-0fresh01", rows[2][0])
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToJSON(sampleResult(), "report", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ScanResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 2, decoded.Summary.TotalSnapshots)
	assert.InDelta(t, 5.00, decoded.Summary.EstimatedSavingsUSD, 0.0001)
	require.Len(t, decoded.Records, 2)
	assert.Equal(t, "snap-0abc123", decoded.Records[0].SnapshotID)
	assert.Equal(t, entity.StatusDeleted, decoded.Records[0].Status)
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToPDF(sampleResult(), "report", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.True(t, strings.HasPrefix(string(data[:4]), "%PDF"))
}

func TestGenerateFilenameCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := generateFilename("scan", dir, "csv")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestDetailRecordsOrderingAndFilter(t *testing.T) {
	result := entity.ScanResult{
		Summary: entity.RunSummary{RetentionPolicyDays: 90},
		Records: []entity.SnapshotRecord{
			{SnapshotID: "snap-old-active", Status: entity.StatusActive, AgeDays: 100},
			{SnapshotID: "snap-archived", Status: entity.StatusArchived, AgeDays: 150},
			{SnapshotID: "snap-fresh", Status: entity.StatusActive, AgeDays: 5},
			{SnapshotID: "snap-deleted", Status: entity.StatusDeleted, AgeDays: 200},
		},
	}

	detail := detailRecords(result)
	require.Len(t, detail, 3)
	assert.Equal(t, "snap-deleted", detail[0].SnapshotID)
	assert.Equal(t, "snap-archived", detail[1].SnapshotID)
	assert.Equal(t, "snap-old-active", detail[2].SnapshotID)
}
