package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

func reportSummary() entity.RunSummary {
	return entity.RunSummary{
		ScanDate:              time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC),
		RetentionPolicyDays:   90,
		RegionsScanned:        []string{"ap-south-1", "us-east-1"},
		TotalSnapshots:        5,
		OldSnapshotsCount:     3,
		DeletedCount:          1,
		ArchivedCount:         1,
		TotalEstimatedCostUSD: 25.00,
		OldSnapshotsCostUSD:   15.00,
		EstimatedSavingsUSD:   10.00,
		AutoDeleteEnabled:     true,
		GlacierArchiveEnabled: false,
	}
}

func TestBuildHTMLReportSections(t *testing.T) {
	html, err := BuildHTMLReport(reportSummary(), nil)
	require.NoError(t, err)

	assert.Contains(t, html, "EBS Snapshot Expiry Report")
	assert.Contains(t, html, "Scan Date: August 26, 2026 at 14:30 UTC")
	assert.Contains(t, html, "Executive Summary")
	assert.Contains(t, html, "$10.00/mo")
	assert.Contains(t, html, "<strong>Total Monthly Cost:</strong> $25.00")
	assert.Contains(t, html, "<strong>Retention Policy:</strong> 90 days")
	assert.Contains(t, html, "ap-south-1, us-east-1")
	assert.Contains(t, html, "<strong>Auto-Delete:</strong> Enabled")
	assert.Contains(t, html, "<strong>Glacier Archive:</strong> Disabled")

	// Sem registros antigos, a tabela detalhada não aparece.
	assert.NotContains(t, html, "Detailed Snapshot List")
}

func TestBuildHTMLReportDetailOrdering(t *testing.T) {
	records := []entity.SnapshotRecord{
		{SnapshotID: "snap-active-old", Status: entity.StatusActive, AgeDays: 120},
		{SnapshotID: "snap-archived", Status: entity.StatusArchived, AgeDays: 150},
		{SnapshotID: "snap-fresh", Status: entity.StatusActive, AgeDays: 10},
		{SnapshotID: "snap-deleted", Status: entity.StatusDeleted, AgeDays: 200},
	}

	html, err := BuildHTMLReport(reportSummary(), records)
	require.NoError(t, err)

	assert.Contains(t, html, "Detailed Snapshot List")
	assert.NotContains(t, html, "snap-fresh")

	deletedIdx := strings.Index(html, "snap-deleted")
	archivedIdx := strings.Index(html, "snap-archived")
	activeIdx := strings.Index(html, "snap-active-old")
	require.Greater(t, deletedIdx, 0)
	assert.Less(t, deletedIdx, archivedIdx)
	assert.Less(t, archivedIdx, activeIdx)
}

func TestBuildHTMLReportStatusClasses(t *testing.T) {
	records := []entity.SnapshotRecord{
		{SnapshotID: "snap-1", Status: entity.StatusDeleted, AgeDays: 120},
		{SnapshotID: "snap-2", Status: entity.StatusArchived, AgeDays: 120},
		{SnapshotID: "snap-3", Status: entity.StatusActive, AgeDays: 120},
	}

	html, err := BuildHTMLReport(reportSummary(), records)
	require.NoError(t, err)

	assert.Contains(t, html, `class="status-deleted"`)
	assert.Contains(t, html, `class="status-archived"`)
	assert.Contains(t, html, `class="status-active"`)
}

func TestBuildHTMLReportEscapesDescription(t *testing.T) {
	records := []entity.SnapshotRecord{
		{SnapshotID: "snap-<script>", Status: entity.StatusDeleted, AgeDays: 120},
	}

	html, err := BuildHTMLReport(reportSummary(), records)
	require.NoError(t, err)

	assert.NotContains(t, html, "snap-<script>")
	assert.Contains(t, html, "snap-&lt;script&gt;")
}
