package repository

import (
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing scan reports to local
// files.
type ExportRepository interface {
	ExportToCSV(result entity.ScanResult, filename string, outputDir string) (string, error)
	ExportToJSON(result entity.ScanResult, filename string, outputDir string) (string, error)
	ExportToPDF(result entity.ScanResult, filename string, outputDir string) (string, error)
}
