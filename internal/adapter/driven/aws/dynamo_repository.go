package aws

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
)

// TTLs do log durável: registros por snapshot expiram em 30 dias, resumos
// em 90.
const (
	recordTTL  = 30 * 24 * time.Hour
	summaryTTL = 90 * 24 * time.Hour
)

// ScanLogRepositoryImpl implementa o ScanLogRepository sobre uma tabela
// DynamoDB compartilhada por registros e resumos, discriminados pelo
// atributo RecordType.
type ScanLogRepositoryImpl struct {
	client    *dynamodb.Client
	tableName string
	logger    zerolog.Logger
}

// NewScanLogRepository cria uma nova implementação do ScanLogRepository.
func NewScanLogRepository(ctx context.Context, tableName string, logger zerolog.Logger) (repository.ScanLogRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &ScanLogRepositoryImpl{
		client:    dynamodb.NewFromConfig(cfg),
		tableName: tableName,
		logger:    logger,
	}, nil
}

// LogRecord persiste um registro individual de snapshot com TTL de 30 dias.
func (r *ScanLogRepositoryImpl) LogRecord(ctx context.Context, record entity.SnapshotRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot record: %w", err)
	}

	item["RecordType"] = &ddbtypes.AttributeValueMemberS{Value: "SNAPSHOT"}
	item["TTL"] = ttlAttribute(recordTTL)

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to log snapshot %s: %w", record.SnapshotID, err)
	}

	r.logger.Debug().Str("snapshot_id", record.SnapshotID).Msg("snapshot record logged to DynamoDB")
	return nil
}

// LogSummary persiste o resumo da execução com TTL de 90 dias. O resumo usa
// uma chave sintética SUMMARY_<timestamp> no lugar do id de snapshot.
func (r *ScanLogRepositoryImpl) LogSummary(ctx context.Context, summary entity.RunSummary) error {
	item, err := attributevalue.MarshalMap(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	now := time.Now().UTC()
	item["SnapshotId"] = &ddbtypes.AttributeValueMemberS{Value: "SUMMARY_" + now.Format("20060102_150405")}
	item["ProcessedAt"] = &ddbtypes.AttributeValueMemberS{Value: now.Format(time.RFC3339)}
	item["RecordType"] = &ddbtypes.AttributeValueMemberS{Value: "SUMMARY"}
	item["TTL"] = ttlAttribute(summaryTTL)

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to log run summary: %w", err)
	}

	r.logger.Debug().Msg("run summary logged to DynamoDB")
	return nil
}

// QueryOldSnapshots varre a tabela por registros SNAPSHOT mais antigos que o
// número de dias informado.
// TODO: trocar o scan por uma GSI (RecordType, AgeDays) quando a tabela crescer.
func (r *ScanLogRepositoryImpl) QueryOldSnapshots(ctx context.Context, olderThanDays int) ([]entity.SnapshotRecord, error) {
	var records []entity.SnapshotRecord

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("RecordType = :type AND AgeDays > :days"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":type": &ddbtypes.AttributeValueMemberS{Value: "SNAPSHOT"},
			":days": &ddbtypes.AttributeValueMemberN{Value: strconv.Itoa(olderThanDays)},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query old snapshots: %w", err)
		}

		var pageRecords []entity.SnapshotRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot records: %w", err)
		}
		records = append(records, pageRecords...)
	}

	return records, nil
}

func ttlAttribute(d time.Duration) ddbtypes.AttributeValue {
	expiry := time.Now().UTC().Add(d).Unix()
	return &ddbtypes.AttributeValueMemberN{Value: strconv.FormatInt(expiry, 10)}
}
