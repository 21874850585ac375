package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava os registros do scan em CSV, um snapshot por linha.
func (r *ExportRepositoryImpl) ExportToCSV(result entity.ScanResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Snapshot ID", "Volume ID", "Region", "Created At", "Age (days)",
		"Size (GB)", "Estimated Cost/mo", "Status", "Action Taken", "Description",
	}
	writer.Write(headers)

	for _, rec := range result.Records {
		record := []string{
			rec.SnapshotID,
			rec.VolumeID,
			rec.Region,
			rec.CreatedAt.UTC().Format(time.RFC3339),
			fmt.Sprintf("%d", rec.AgeDays),
			fmt.Sprintf("%d", rec.SizeGB),
			fmt.Sprintf("$%.2f", rec.EstimatedCost),
			string(rec.Status),
			string(rec.ActionTaken),
			rec.Description,
		}
		writer.Write(record)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o resultado completo (resumo + registros) em JSON.
func (r *ExportRepositoryImpl) ExportToJSON(result entity.ScanResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return "", fmt.Errorf("error encoding JSON report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava o relatório do scan em PDF: resumo executivo seguido da
// tabela de snapshots antigos, excluídos e arquivados.
func (r *ExportRepositoryImpl) ExportToPDF(result entity.ScanResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	summary := result.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  EBS Snapshot Expiry Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Scan Date: %s", summary.ScanDate.UTC().Format("2006-01-02 15:04 UTC"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSectionTitle("Executive Summary")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	summaryLines := []string{
		fmt.Sprintf("Total Snapshots: %d", summary.TotalSnapshots),
		fmt.Sprintf("Old Snapshots (>%d days): %d", summary.RetentionPolicyDays, summary.OldSnapshotsCount),
		fmt.Sprintf("Deleted: %d | Archived: %d", summary.DeletedCount, summary.ArchivedCount),
		fmt.Sprintf("Total Monthly Cost: $%.2f", summary.TotalEstimatedCostUSD),
		fmt.Sprintf("Old Snapshots Cost: $%.2f", summary.OldSnapshotsCostUSD),
		fmt.Sprintf("Estimated Savings: $%.2f/mo", summary.EstimatedSavingsUSD),
	}
	pdf.MultiCell(190, 5, tr(strings.Join(summaryLines, "\n")), "", "L", false)
	pdf.Ln(8)

	drawSectionTitle("Configuration")
	pdf.SetFont("Arial", "", 10)
	configLines := []string{
		fmt.Sprintf("Retention Policy: %d days", summary.RetentionPolicyDays),
		fmt.Sprintf("Regions Scanned: %s", strings.Join(summary.RegionsScanned, ", ")),
		fmt.Sprintf("Auto-Delete: %s | Glacier Archive: %s",
			enabledLabel(summary.AutoDeleteEnabled), enabledLabel(summary.GlacierArchiveEnabled)),
	}
	pdf.MultiCell(190, 5, tr(strings.Join(configLines, "\n")), "", "L", false)
	pdf.Ln(8)

	detail := detailRecords(result)
	if len(detail) > 0 {
		drawSectionTitle("Snapshot Detail")

		widths := []float64{38, 36, 24, 16, 16, 20, 40}
		columns := []string{"Snapshot ID", "Volume ID", "Region", "Age", "GB", "Cost/mo", "Status"}

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		for i, col := range columns {
			pdf.CellFormat(widths[i], 7, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, rec := range detail {
			cells := []string{
				rec.SnapshotID,
				rec.VolumeID,
				rec.Region,
				fmt.Sprintf("%d", rec.AgeDays),
				fmt.Sprintf("%d", rec.SizeGB),
				fmt.Sprintf("$%.2f", rec.EstimatedCost),
				string(rec.Status),
			}
			for i, cell := range cells {
				pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// detailRecords retorna os registros relevantes para a tabela de detalhes:
// excluídos, arquivados e antigos ainda ativos, nessa ordem.
func detailRecords(result entity.ScanResult) []entity.SnapshotRecord {
	var deleted, archived, oldActive []entity.SnapshotRecord

	for _, rec := range result.Records {
		switch {
		case rec.Status == entity.StatusDeleted:
			deleted = append(deleted, rec)
		case rec.Status == entity.StatusArchived:
			archived = append(archived, rec)
		case rec.AgeDays > result.Summary.RetentionPolicyDays:
			oldActive = append(oldActive, rec)
		}
	}

	detail := make([]entity.SnapshotRecord, 0, len(deleted)+len(archived)+len(oldActive))
	detail = append(detail, deleted...)
	detail = append(detail, archived...)
	detail = append(detail, oldActive...)
	return detail
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
