package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	awsadapter "github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/aws"
	configadapter "github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/config"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/export"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/notify"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driving/cli"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/application/usecase"
	"github.com/diillson/ebs-snapshot-expiry-go/pkg/console"
	"github.com/diillson/ebs-snapshot-expiry-go/pkg/version"
)

func main() {
	ctx := context.Background()

	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", "snapshot-expiry").
		Logger()

	// Configuração base vem do ambiente; flags e arquivo sobrepõem depois.
	cfg := configadapter.LoadScanConfigFromEnv()

	// Inicializa os repositórios
	snapshotRepo, err := awsadapter.NewSnapshotRepository(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	glacierRepo, err := awsadapter.NewGlacierRepository(ctx, cfg.GlacierVaultName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	scanLogRepo, err := awsadapter.NewScanLogRepository(ctx, cfg.DynamoTableName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	secretRepo, err := awsadapter.NewSecretRepository(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	notifier := notify.NewGmailNotifier(ctx, cfg, secretRepo, logger)
	exportRepo := export.NewExportRepository()
	configRepo := configadapter.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	scanUseCase := usecase.NewScanUseCase(snapshotRepo, glacierRepo, scanLogRepo, notifier, logger)

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.FormatVersion(), cfg)
	app.SetDependencies(scanUseCase, configRepo, exportRepo, consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
