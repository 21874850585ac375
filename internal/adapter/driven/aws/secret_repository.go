package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
)

// SecretRepositoryImpl implementa o SecretRepository sobre o Secrets Manager.
type SecretRepositoryImpl struct {
	client *secretsmanager.Client
}

// NewSecretRepository cria uma nova implementação do SecretRepository.
func NewSecretRepository(ctx context.Context) (repository.SecretRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SecretRepositoryImpl{client: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetSecret obtém o segredo e extrai o campo "password" quando o valor é um
// documento JSON; caso contrário retorna a string inteira.
func (r *SecretRepositoryImpl) GetSecret(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}

	secretString := aws.ToString(out.SecretString)
	if secretString == "" {
		return "", nil
	}

	var doc map[string]string
	if err := json.Unmarshal([]byte(secretString), &doc); err == nil {
		if password, ok := doc["password"]; ok {
			return password, nil
		}
	}

	return secretString, nil
}
