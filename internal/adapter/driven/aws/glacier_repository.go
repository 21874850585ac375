package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	glaciertypes "github.com/aws/aws-sdk-go-v2/service/glacier/types"
	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
)

// archiveMetadata is the JSON payload written to the vault for each archived
// snapshot. The snapshot data itself stays in EBS; the vault keeps a durable
// metadata record of what was retired.
type archiveMetadata struct {
	SnapshotID        string `json:"snapshot_id"`
	Region            string `json:"region"`
	SizeGB            int32  `json:"size_gb"`
	OriginalCreatedAt string `json:"original_created_at"`
	ArchivedAt        string `json:"archived_at"`
	Type              string `json:"type"`
}

// GlacierRepositoryImpl implementa o ArchiveRepository sobre o Glacier, com
// cache de clientes por região.
type GlacierRepositoryImpl struct {
	baseCfg   aws.Config
	vaultName string
	cache     map[string]*glacier.Client
	mu        sync.Mutex
	logger    zerolog.Logger
}

// NewGlacierRepository cria uma nova implementação do ArchiveRepository
// apontando para o vault informado.
func NewGlacierRepository(ctx context.Context, vaultName string, logger zerolog.Logger) (repository.ArchiveRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &GlacierRepositoryImpl{
		baseCfg:   cfg,
		vaultName: vaultName,
		cache:     make(map[string]*glacier.Client),
		logger:    logger,
	}, nil
}

func (r *GlacierRepositoryImpl) client(region string) *glacier.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.cache[region]; ok {
		return client
	}

	regionalCfg := r.baseCfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	client := glacier.NewFromConfig(regionalCfg)
	r.cache[region] = client
	return client
}

// ArchiveSnapshot grava os metadados do snapshot no vault. Um vault
// inexistente é um resultado malsucedido, não um erro: o classificador
// decide seguir em frente.
func (r *GlacierRepositoryImpl) ArchiveSnapshot(ctx context.Context, req entity.ArchiveRequest) (entity.ArchiveResult, error) {
	payload, err := json.Marshal(archiveMetadata{
		SnapshotID:        req.SnapshotID,
		Region:            req.Region,
		SizeGB:            req.SizeGB,
		OriginalCreatedAt: req.CreatedAt.UTC().Format(time.RFC3339),
		ArchivedAt:        time.Now().UTC().Format(time.RFC3339),
		Type:              "ebs_snapshot_metadata",
	})
	if err != nil {
		return entity.ArchiveResult{}, fmt.Errorf("failed to marshal archive metadata: %w", err)
	}

	description := fmt.Sprintf("EBS Snapshot %s - %dGB - %s",
		req.SnapshotID, req.SizeGB, req.CreatedAt.UTC().Format("2006-01-02"))

	out, err := r.client(req.Region).UploadArchive(ctx, &glacier.UploadArchiveInput{
		AccountId:          aws.String("-"),
		VaultName:          aws.String(r.vaultName),
		ArchiveDescription: aws.String(description),
		Body:               bytes.NewReader(payload),
	})
	if err != nil {
		var notFound *glaciertypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			r.logger.Warn().Str("vault", r.vaultName).Msg("Glacier vault not found, skipping archival")
			return entity.ArchiveResult{
				Success:    false,
				SnapshotID: req.SnapshotID,
				Reason:     "vault not found",
			}, nil
		}
		return entity.ArchiveResult{}, fmt.Errorf("failed to archive snapshot %s: %w", req.SnapshotID, err)
	}

	return entity.ArchiveResult{
		Success:    true,
		ArchiveID:  aws.ToString(out.ArchiveId),
		SnapshotID: req.SnapshotID,
		Vault:      r.vaultName,
	}, nil
}

// InitiateRetrieval inicia um job de recuperação bulk (a opção mais barata)
// para um arquivo previamente gravado.
func (r *GlacierRepositoryImpl) InitiateRetrieval(ctx context.Context, archiveID, region string) (entity.RetrievalJob, error) {
	out, err := r.client(region).InitiateJob(ctx, &glacier.InitiateJobInput{
		AccountId: aws.String("-"),
		VaultName: aws.String(r.vaultName),
		JobParameters: &glaciertypes.JobParameters{
			Type:      aws.String("archive-retrieval"),
			ArchiveId: aws.String(archiveID),
			Tier:      aws.String("Bulk"),
		},
	})
	if err != nil {
		return entity.RetrievalJob{}, fmt.Errorf("failed to initiate Glacier retrieval: %w", err)
	}

	return entity.RetrievalJob{
		JobID:     aws.ToString(out.JobId),
		ArchiveID: archiveID,
	}, nil
}
