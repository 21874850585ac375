package aws

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
)

// snapshotNotFoundCode é o código retornado pelo EC2 quando o snapshot já
// não existe. Execuções repetidas podem re-tentar a exclusão de um id já
// excluído; isso é um caso soft, não um erro.
const snapshotNotFoundCode = "InvalidSnapshot.NotFound"

// SnapshotRepositoryImpl implementa o SnapshotRepository com cache de
// clientes EC2 por região.
type SnapshotRepositoryImpl struct {
	baseCfg  aws.Config
	ec2Cache map[string]*ec2.Client
	mu       sync.Mutex
	logger   zerolog.Logger
}

// NewSnapshotRepository cria uma nova implementação do SnapshotRepository
// usando a cadeia padrão de credenciais.
func NewSnapshotRepository(ctx context.Context, logger zerolog.Logger) (repository.SnapshotRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SnapshotRepositoryImpl{
		baseCfg:  cfg,
		ec2Cache: make(map[string]*ec2.Client),
		logger:   logger,
	}, nil
}

func (r *SnapshotRepositoryImpl) ec2Client(region string) *ec2.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.ec2Cache[region]; ok {
		return client
	}

	regionalCfg := r.baseCfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	client := ec2.NewFromConfig(regionalCfg)
	r.ec2Cache[region] = client
	return client
}

// ListSnapshots lista todos os snapshots da conta (OwnerIds=self) na região,
// paginando até o fim.
func (r *SnapshotRepositoryImpl) ListSnapshots(ctx context.Context, region string) ([]entity.RawSnapshot, error) {
	client := r.ec2Client(region)

	var raws []entity.RawSnapshot

	paginator := ec2.NewDescribeSnapshotsPaginator(client, &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{"self"},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe snapshots in %s: %w", region, err)
		}

		for _, snap := range page.Snapshots {
			raws = append(raws, entity.RawSnapshot{
				SnapshotID:  aws.ToString(snap.SnapshotId),
				VolumeID:    aws.ToString(snap.VolumeId),
				Region:      region,
				StartTime:   aws.ToTime(snap.StartTime),
				SizeGB:      aws.ToInt32(snap.VolumeSize),
				Description: aws.ToString(snap.Description),
			})
		}
	}

	return raws, nil
}

// DeleteSnapshot exclui um snapshot. Um snapshot inexistente é tratado como
// já excluído.
func (r *SnapshotRepositoryImpl) DeleteSnapshot(ctx context.Context, snapshotID, region string) error {
	client := r.ec2Client(region)

	_, err := client.DeleteSnapshot(ctx, &ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshotID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == snapshotNotFoundCode {
			r.logger.Info().Str("snapshot_id", snapshotID).Msg("snapshot already gone, treating delete as success")
			return nil
		}
		return fmt.Errorf("failed to delete snapshot %s in %s: %w", snapshotID, region, err)
	}

	return nil
}

// GetAccountID retorna o ID da conta das credenciais atuais.
func (r *SnapshotRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	client := sts.NewFromConfig(r.baseCfg)

	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}

	return aws.ToString(out.Account), nil
}
