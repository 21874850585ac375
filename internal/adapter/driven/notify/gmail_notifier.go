package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/entity"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/domain/repository"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// GmailNotifier implementa o NotifierRepository via SMTP do Gmail. A senha
// de aplicativo vem do Secrets Manager na construção; sem credenciais
// completas o notifier fica inerte e o scan segue sem e-mail.
type GmailNotifier struct {
	user     string
	receiver string
	password string
	host     string
	port     int
	logger   zerolog.Logger
}

// NewGmailNotifier cria um novo GmailNotifier, buscando a senha no provedor
// de segredos. Falha na busca deixa o notifier desconfigurado, nunca
// interrompe a construção.
func NewGmailNotifier(ctx context.Context, cfg types.ScanConfig, secrets repository.SecretRepository, logger zerolog.Logger) *GmailNotifier {
	n := &GmailNotifier{
		user:     cfg.GmailUser,
		receiver: cfg.AlertReceiver,
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		logger:   logger,
	}

	if cfg.GmailPasswordSecret != "" && secrets != nil {
		password, err := secrets.GetSecret(ctx, cfg.GmailPasswordSecret)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to retrieve Gmail password, email reports disabled")
		} else {
			n.password = password
		}
	}

	return n
}

// Configured reports whether user, receiver and password are all present.
func (n *GmailNotifier) Configured() bool {
	return n.user != "" && n.receiver != "" && n.password != ""
}

// SendReport monta o relatório HTML e envia por SMTP.
func (n *GmailNotifier) SendReport(ctx context.Context, summary entity.RunSummary, records []entity.SnapshotRecord) error {
	if !n.Configured() {
		return types.ErrNotifierNotConfigured
	}

	html, err := BuildHTMLReport(summary, records)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	subject := fmt.Sprintf("EBS Snapshot Report: %d Old Snapshots Found | Savings: $%.2f/mo",
		summary.OldSnapshotsCount, summary.EstimatedSavingsUSD)

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.user)
	msg.SetHeader("To", n.receiver)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(n.host, n.port, n.user, n.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email report: %w", err)
	}

	n.logger.Info().Str("to", n.receiver).Msg("email report sent")
	return nil
}
