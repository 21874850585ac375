package types

// ScanConfig is the immutable runtime configuration for one scan run. It is
// built once at startup (environment, optionally overridden by a config file
// and CLI flags) and passed into each component's constructor.
type ScanConfig struct {
	RetentionDays         int
	AutoDeleteEnabled     bool
	GlacierArchiveEnabled bool
	Regions               []string
	CostPerGBMonth        float64
	DryRun                bool

	DynamoTableName  string
	GlacierVaultName string

	GmailUser           string
	AlertReceiver       string
	GmailPasswordSecret string
	SMTPHost            string
	SMTPPort            int
}

// Config represents the scan configuration that can be loaded from a file.
type Config struct {
	Regions        []string `json:"regions" yaml:"regions" toml:"regions"`
	RetentionDays  int      `json:"retention_days" yaml:"retention_days" toml:"retention_days"`
	AutoDelete     *bool    `json:"auto_delete" yaml:"auto_delete" toml:"auto_delete"`
	GlacierArchive *bool    `json:"glacier_archive" yaml:"glacier_archive" toml:"glacier_archive"`
	CostPerGBMonth float64  `json:"cost_per_gb_month" yaml:"cost_per_gb_month" toml:"cost_per_gb_month"`
	DryRun         *bool    `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Apply sobrepõe os campos presentes no arquivo de configuração sobre a
// configuração base. Campos ausentes mantêm o valor anterior.
func (c *Config) Apply(cfg ScanConfig) ScanConfig {
	if c == nil {
		return cfg
	}

	if len(c.Regions) > 0 {
		cfg.Regions = c.Regions
	}
	if c.RetentionDays > 0 {
		cfg.RetentionDays = c.RetentionDays
	}
	if c.AutoDelete != nil {
		cfg.AutoDeleteEnabled = *c.AutoDelete
	}
	if c.GlacierArchive != nil {
		cfg.GlacierArchiveEnabled = *c.GlacierArchive
	}
	if c.CostPerGBMonth > 0 {
		cfg.CostPerGBMonth = c.CostPerGBMonth
	}
	if c.DryRun != nil {
		cfg.DryRun = *c.DryRun
	}

	return cfg
}
