package main

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	awsadapter "github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/aws"
	configadapter "github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/config"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driven/notify"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/adapter/driving/lambda"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/application/usecase"
)

func main() {
	ctx := context.Background()

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "snapshot-expiry").
		Logger()

	cfg := configadapter.LoadScanConfigFromEnv()

	snapshotRepo, err := awsadapter.NewSnapshotRepository(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize snapshot repository")
	}
	glacierRepo, err := awsadapter.NewGlacierRepository(ctx, cfg.GlacierVaultName, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Glacier repository")
	}
	scanLogRepo, err := awsadapter.NewScanLogRepository(ctx, cfg.DynamoTableName, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize scan log repository")
	}
	secretRepo, err := awsadapter.NewSecretRepository(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize secret repository")
	}

	notifier := notify.NewGmailNotifier(ctx, cfg, secretRepo, logger)

	scanUseCase := usecase.NewScanUseCase(snapshotRepo, glacierRepo, scanLogRepo, notifier, logger)
	handler := lambda.NewHandler(scanUseCase, cfg, logger)

	awslambda.Start(handler.Handle)
}
