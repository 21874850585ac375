package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/application/usecase"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	scanUseCase *usecase.ScanUseCase
	configRepo  repository.ConfigRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
	baseCfg     types.ScanConfig
	version     string
}

// NewCLIApp cria uma nova aplicação CLI. baseCfg é a configuração vinda do
// ambiente; flags e arquivo de configuração a sobrepõem por execução.
func NewCLIApp(versionStr string, baseCfg types.ScanConfig) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		baseCfg: baseCfg,
	}

	rootCmd := &cobra.Command{
		Use:     "snapshot-expiry",
		Short:   "EBS Snapshot Expiry Manager CLI",
		Version: versionStr,
		RunE:    app.runScan,
	}

	rootCmd.SetVersionTemplate(`{{printf "EBS Snapshot Expiry Manager version: %s\n" .Version}}`)

	// Flags de política do scan
	rootCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.Flags().StringSliceP("regions", "r", nil, "AWS regions to scan for snapshots (comma-separated)")
	rootCmd.Flags().IntP("retention-days", "R", 0, "Retention policy in days (default: RETENTION_DAYS env or 90)")
	rootCmd.Flags().Bool("auto-delete", false, "Delete snapshots older than the retention policy")
	rootCmd.Flags().Bool("glacier-archive", false, "Archive snapshot metadata to Glacier before expiry")
	rootCmd.Flags().Float64("cost-per-gb", 0, "Estimated monthly cost per GB in USD (default: 0.05)")
	rootCmd.Flags().Bool("dry-run", false, "Log the actions that would be taken without touching anything")

	// Flags de exportação do relatório
	rootCmd.Flags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Report types to export: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	retrieveCmd := &cobra.Command{
		Use:   "retrieve",
		Short: "Initiate a Glacier retrieval job for an archived snapshot",
		RunE:  app.runRetrieve,
	}
	retrieveCmd.Flags().String("archive-id", "", "Glacier archive ID to retrieve")
	retrieveCmd.Flags().String("region", "", "Region of the Glacier vault")
	retrieveCmd.MarkFlagRequired("archive-id")
	retrieveCmd.MarkFlagRequired("region")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List previously logged snapshots older than a number of days",
		RunE:  app.runHistory,
	}
	historyCmd.Flags().Int("days", 90, "Minimum age in days")

	rootCmd.AddCommand(retrieveCmd, historyCmd)

	app.rootCmd = rootCmd
	return app
}

// SetDependencies injeta o caso de uso e os repositórios usados pela CLI.
func (app *CLIApp) SetDependencies(
	scanUseCase *usecase.ScanUseCase,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) {
	app.scanUseCase = scanUseCase
	app.configRepo = configRepo
	app.exportRepo = exportRepo
	app.console = console
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	regions, _ := cmd.Flags().GetStringSlice("regions")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Regions:    regions,
		ReportName: reportName,
		ReportType: reportType,
		DryRun:     dryRun,
	}

	if cmd.Flags().Changed("retention-days") {
		retentionDays, _ := cmd.Flags().GetInt("retention-days")
		args.RetentionDays = &retentionDays
	}
	if cmd.Flags().Changed("auto-delete") {
		autoDelete, _ := cmd.Flags().GetBool("auto-delete")
		args.AutoDelete = &autoDelete
	}
	if cmd.Flags().Changed("glacier-archive") {
		glacierArchive, _ := cmd.Flags().GetBool("glacier-archive")
		args.GlacierArchive = &glacierArchive
	}
	if cmd.Flags().Changed("cost-per-gb") {
		costPerGB, _ := cmd.Flags().GetFloat64("cost-per-gb")
		args.CostPerGB = &costPerGB
	}

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}
	args.Dir = dir

	return args, nil
}

// resolveConfig monta a configuração final da execução: ambiente, depois
// arquivo de configuração, depois flags.
func (app *CLIApp) resolveConfig(args *types.CLIArgs) (types.ScanConfig, error) {
	cfg := app.baseCfg

	if args.ConfigFile != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return types.ScanConfig{}, err
		}
		cfg = fileCfg.Apply(cfg)

		if args.ReportName == "" {
			args.ReportName = fileCfg.ReportName
		}
		if len(args.ReportType) == 0 {
			args.ReportType = fileCfg.ReportType
		}
		if args.Dir == "" {
			args.Dir = fileCfg.Dir
		}
	}

	if len(args.Regions) > 0 {
		cfg.Regions = args.Regions
	}
	if args.RetentionDays != nil {
		cfg.RetentionDays = *args.RetentionDays
	}
	if args.AutoDelete != nil {
		cfg.AutoDeleteEnabled = *args.AutoDelete
	}
	if args.GlacierArchive != nil {
		cfg.GlacierArchiveEnabled = *args.GlacierArchive
	}
	if args.CostPerGB != nil {
		cfg.CostPerGBMonth = *args.CostPerGB
	}
	if args.DryRun {
		cfg.DryRun = true
	}

	return cfg, nil
}

// runScan é o ponto de entrada do comando raiz.
func (app *CLIApp) runScan(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.resolveConfig(args)
	if err != nil {
		return err
	}

	// Identificação da conta é informativa; falha não impede o scan.
	if accountID, err := app.scanUseCase.AccountID(cmd.Context()); err == nil && accountID != "" {
		app.console.LogInfo("AWS Account: %s", accountID)
	}

	status := app.console.Status(fmt.Sprintf("Scanning %d region(s) for expired snapshots...", len(cfg.Regions)))
	result, err := app.scanUseCase.Run(cmd.Context(), cfg)
	status.Stop()
	if err != nil {
		return err
	}

	app.renderSummary(result)

	return app.exportReports(result, args)
}

func (app *CLIApp) runRetrieve(cmd *cobra.Command, _ []string) error {
	archiveID, _ := cmd.Flags().GetString("archive-id")
	region, _ := cmd.Flags().GetString("region")

	job, err := app.scanUseCase.InitiateRetrieval(cmd.Context(), archiveID, region)
	if err != nil {
		return err
	}

	app.console.LogSuccess("Retrieval job initiated: %s", job.JobID)
	app.console.LogInfo("Bulk retrievals can take 12-48 hours to complete.")
	return nil
}

func (app *CLIApp) runHistory(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")

	records, err := app.scanUseCase.History(cmd.Context(), days)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		app.console.LogInfo("No logged snapshots older than %d days.", days)
		return nil
	}

	table := app.console.CreateTable()
	table.AddColumn("Snapshot ID")
	table.AddColumn("Region")
	table.AddColumn("Age (days)")
	table.AddColumn("Size (GB)")
	table.AddColumn("Cost/mo")
	table.AddColumn("Status")
	for _, rec := range records {
		table.AddRow(
			rec.SnapshotID,
			rec.Region,
			fmt.Sprintf("%d", rec.AgeDays),
			fmt.Sprintf("%d", rec.SizeGB),
			fmt.Sprintf("$%.2f", rec.EstimatedCost),
			string(rec.Status),
		)
	}
	app.console.Println(table.Render())
	return nil
}

// renderSummary imprime o resumo do scan em forma de tabela.
func (app *CLIApp) renderSummary(result entity.ScanResult) {
	summary := result.Summary

	table := app.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Total Snapshots", fmt.Sprintf("%d", summary.TotalSnapshots))
	table.AddRow(fmt.Sprintf("Old Snapshots (>%d days)", summary.RetentionPolicyDays), fmt.Sprintf("%d", summary.OldSnapshotsCount))
	table.AddRow("Deleted", fmt.Sprintf("%d", summary.DeletedCount))
	table.AddRow("Archived", fmt.Sprintf("%d", summary.ArchivedCount))
	table.AddRow("Total Monthly Cost", fmt.Sprintf("$%.2f", summary.TotalEstimatedCostUSD))
	table.AddRow("Old Snapshots Cost", fmt.Sprintf("$%.2f", summary.OldSnapshotsCostUSD))
	table.AddRow("Estimated Savings", fmt.Sprintf("$%.2f/mo", summary.EstimatedSavingsUSD))
	app.console.Println(table.Render())

	if summary.OldSnapshotsCount > 0 && !summary.AutoDeleteEnabled && !summary.GlacierArchiveEnabled {
		app.console.LogWarning("%d old snapshot(s) found but auto-delete and Glacier archive are disabled.", summary.OldSnapshotsCount)
	}
}

// exportReports grava os relatórios nos formatos pedidos.
func (app *CLIApp) exportReports(result entity.ScanResult, args *types.CLIArgs) error {
	if len(args.ReportType) == 0 {
		return nil
	}

	name := args.ReportName
	if name == "" {
		name = "snapshot-expiry-report"
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = app.exportRepo.ExportToCSV(result, name, args.Dir)
		case "json":
			path, err = app.exportRepo.ExportToJSON(result, name, args.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportToPDF(result, name, args.Dir)
		default:
			return fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}
		if err != nil {
			app.console.LogError("Failed to export %s report: %v", reportType, err)
			continue
		}
		app.console.LogSuccess("Report saved: %s", path)
	}

	return nil
}
