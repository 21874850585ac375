package notify

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// reportData é o modelo passado ao template HTML do relatório.
type reportData struct {
	ScanDate       string
	Summary        entity.RunSummary
	RegionsScanned string
	Detail         []detailRow
}

type detailRow struct {
	entity.SnapshotRecord
	StatusClass string
}

var reportTemplate = template.Must(template.New("report").Parse(`<html>
<head>
<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
              color: white; padding: 20px; border-radius: 5px; }
    .summary { background: #f4f4f4; padding: 15px; margin: 20px 0; border-radius: 5px; }
    .metric { display: inline-block; margin: 10px 20px 10px 0; }
    .metric-label { font-size: 12px; color: #666; }
    .metric-value { font-size: 24px; font-weight: bold; color: #667eea; }
    .table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    .table th { background: #667eea; color: white; padding: 10px; text-align: left; }
    .table td { padding: 8px; border-bottom: 1px solid #ddd; }
    .status-deleted { color: #e74c3c; font-weight: bold; }
    .status-archived { color: #f39c12; font-weight: bold; }
    .status-active { color: #27ae60; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;
              font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="header">
    <h1>EBS Snapshot Expiry Report</h1>
    <p>Scan Date: {{.ScanDate}}</p>
</div>

<div class="summary">
    <h2>Executive Summary</h2>
    <div class="metric">
        <div class="metric-label">Total Snapshots</div>
        <div class="metric-value">{{.Summary.TotalSnapshots}}</div>
    </div>
    <div class="metric">
        <div class="metric-label">Old Snapshots (&gt;{{.Summary.RetentionPolicyDays}} days)</div>
        <div class="metric-value" style="color: #e74c3c;">{{.Summary.OldSnapshotsCount}}</div>
    </div>
    <div class="metric">
        <div class="metric-label">Deleted</div>
        <div class="metric-value" style="color: #e74c3c;">{{.Summary.DeletedCount}}</div>
    </div>
    <div class="metric">
        <div class="metric-label">Archived</div>
        <div class="metric-value" style="color: #f39c12;">{{.Summary.ArchivedCount}}</div>
    </div>
    <div class="metric">
        <div class="metric-label">Estimated Savings</div>
        <div class="metric-value" style="color: #27ae60;">${{printf "%.2f" .Summary.EstimatedSavingsUSD}}/mo</div>
    </div>
</div>

<h2>Cost Analysis</h2>
<ul>
    <li><strong>Total Monthly Cost:</strong> ${{printf "%.2f" .Summary.TotalEstimatedCostUSD}}</li>
    <li><strong>Old Snapshots Cost:</strong> ${{printf "%.2f" .Summary.OldSnapshotsCostUSD}}</li>
    <li><strong>Potential Savings:</strong> ${{printf "%.2f" .Summary.EstimatedSavingsUSD}}</li>
</ul>

<h2>Configuration</h2>
<ul>
    <li><strong>Retention Policy:</strong> {{.Summary.RetentionPolicyDays}} days</li>
    <li><strong>Regions Scanned:</strong> {{.RegionsScanned}}</li>
    <li><strong>Auto-Delete:</strong> {{if .Summary.AutoDeleteEnabled}}Enabled{{else}}Disabled{{end}}</li>
    <li><strong>Glacier Archive:</strong> {{if .Summary.GlacierArchiveEnabled}}Enabled{{else}}Disabled{{end}}</li>
</ul>

{{if .Detail}}
<h2>Detailed Snapshot List</h2>
<table class="table">
    <thead>
        <tr>
            <th>Snapshot ID</th>
            <th>Volume ID</th>
            <th>Region</th>
            <th>Age (days)</th>
            <th>Size (GB)</th>
            <th>Cost/mo</th>
            <th>Status</th>
        </tr>
    </thead>
    <tbody>
        {{range .Detail}}
        <tr>
            <td>{{.SnapshotID}}</td>
            <td>{{.VolumeID}}</td>
            <td>{{.Region}}</td>
            <td>{{.AgeDays}}</td>
            <td>{{.SizeGB}}</td>
            <td>${{printf "%.2f" .EstimatedCost}}</td>
            <td class="{{.StatusClass}}">{{.Status}}</td>
        </tr>
        {{end}}
    </tbody>
</table>
{{end}}

<div class="footer">
    <p>This is an automated report from EBS Snapshot Expiry Manager.</p>
    <p>For questions or issues, contact your AWS administrator.</p>
</div>
</body>
</html>
`))

// BuildHTMLReport renderiza o relatório HTML do scan. A lista detalhada
// mostra primeiro os excluídos, depois os arquivados e por fim os antigos
// ainda ativos.
func BuildHTMLReport(summary entity.RunSummary, records []entity.SnapshotRecord) (string, error) {
	data := reportData{
		ScanDate:       summary.ScanDate.UTC().Format("January 02, 2006 at 15:04 UTC"),
		Summary:        summary,
		RegionsScanned: strings.Join(summary.RegionsScanned, ", "),
		Detail:         detailRows(summary, records),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func detailRows(summary entity.RunSummary, records []entity.SnapshotRecord) []detailRow {
	var deleted, archived, oldActive []detailRow

	for _, r := range records {
		row := detailRow{SnapshotRecord: r, StatusClass: "status-" + strings.ToLower(string(r.Status))}
		switch {
		case r.Status == entity.StatusDeleted:
			deleted = append(deleted, row)
		case r.Status == entity.StatusArchived:
			archived = append(archived, row)
		case r.AgeDays > summary.RetentionPolicyDays:
			oldActive = append(oldActive, row)
		}
	}

	rows := make([]detailRow, 0, len(deleted)+len(archived)+len(oldActive))
	rows = append(rows, deleted...)
	rows = append(rows, archived...)
	rows = append(rows, oldActive...)
	return rows
}
