package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// Defaults da política de retenção quando o ambiente não define nada.
const (
	DefaultRetentionDays  = 90
	DefaultRegion         = "ap-south-1"
	DefaultCostPerGBMonth = 0.05
	DefaultDynamoTable    = "ebs-snapshot-reports"
	DefaultGlacierVault   = "ebs-snapshot-archive"
	DefaultSecretName     = "ebs/gmail-app-password"
	DefaultSMTPHost       = "smtp.gmail.com"
	DefaultSMTPPort       = 587
)

// LoadScanConfigFromEnv monta o ScanConfig a partir das variáveis de
// ambiente, aplicando os defaults documentados. O resultado é imutável: cada
// componente recebe o struct pronto no construtor.
func LoadScanConfigFromEnv() types.ScanConfig {
	return types.ScanConfig{
		RetentionDays:         getEnvInt("RETENTION_DAYS", DefaultRetentionDays),
		AutoDeleteEnabled:     getEnvBool("ENABLE_AUTO_DELETE", false),
		GlacierArchiveEnabled: getEnvBool("ENABLE_GLACIER_ARCHIVE", false),
		Regions:               getEnvList("SCAN_REGIONS", []string{DefaultRegion}),
		CostPerGBMonth:        getEnvFloat("EBS_SNAPSHOT_COST_PER_GB", DefaultCostPerGBMonth),
		DryRun:                getEnvBool("DRY_RUN", false),
		DynamoTableName:       getEnv("DYNAMODB_TABLE_NAME", DefaultDynamoTable),
		GlacierVaultName:      getEnv("GLACIER_VAULT_NAME", DefaultGlacierVault),
		GmailUser:             getEnv("GMAIL_USER", ""),
		AlertReceiver:         getEnv("ALERT_RECEIVER", ""),
		GmailPasswordSecret:   getEnv("GMAIL_PASSWORD_SECRET", DefaultSecretName),
		SMTPHost:              getEnv("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:              getEnvInt("SMTP_PORT", DefaultSMTPPort),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
