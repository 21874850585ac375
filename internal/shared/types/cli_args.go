package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Regions        []string
	RetentionDays  *int
	AutoDelete     *bool
	GlacierArchive *bool
	CostPerGB      *float64
	DryRun         bool
	ReportName     string
	ReportType     []string
	Dir            string
}
