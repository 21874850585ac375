package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeTempConfig(t, "scan.yaml", `
regions:
  - us-east-1
  - eu-west-1
retention_days: 45
auto_delete: true
report_type:
  - csv
  - pdf
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, cfg.Regions)
	assert.Equal(t, 45, cfg.RetentionDays)
	require.NotNil(t, cfg.AutoDelete)
	assert.True(t, *cfg.AutoDelete)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeTempConfig(t, "scan.toml", `
regions = ["ap-south-1"]
retention_days = 120
glacier_archive = true
cost_per_gb_month = 0.023
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ap-south-1"}, cfg.Regions)
	assert.Equal(t, 120, cfg.RetentionDays)
	require.NotNil(t, cfg.GlacierArchive)
	assert.True(t, *cfg.GlacierArchive)
	assert.InDelta(t, 0.023, cfg.CostPerGBMonth, 0.0001)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeTempConfig(t, "scan.json", `{"regions":["us-west-2"],"dry_run":true}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"us-west-2"}, cfg.Regions)
	require.NotNil(t, cfg.DryRun)
	assert.True(t, *cfg.DryRun)
}

func TestLoadConfigFileRejectsUnknownExtension(t *testing.T) {
	path := writeTempConfig(t, "scan.ini", "regions=us-east-1")

	_, err := NewConfigRepository().LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigApplyOverridesOnlyPresentFields(t *testing.T) {
	base := types.ScanConfig{
		RetentionDays:         90,
		Regions:               []string{"ap-south-1"},
		CostPerGBMonth:        0.05,
		AutoDeleteEnabled:     false,
		GlacierArchiveEnabled: true,
	}

	autoDelete := true
	fileCfg := &types.Config{
		RetentionDays: 30,
		AutoDelete:    &autoDelete,
	}

	merged := fileCfg.Apply(base)

	assert.Equal(t, 30, merged.RetentionDays)
	assert.True(t, merged.AutoDeleteEnabled)
	// Campos ausentes preservam a base.
	assert.Equal(t, []string{"ap-south-1"}, merged.Regions)
	assert.True(t, merged.GlacierArchiveEnabled)
	assert.InDelta(t, 0.05, merged.CostPerGBMonth, 0.0001)
}
