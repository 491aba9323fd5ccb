package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/config"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.NotificationChannel = (*EmailChannel)(nil)

// sendMailFunc matches smtp.SendMail; injected so tests can capture the
// outgoing message without a live SMTP server.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailChannel delivers reminders over SMTP. A missing recipient address
// is a configuration error, not a transient failure; the channel never
// retries.
type EmailChannel struct {
	cfg      config.EmailConfig
	to       func(ctx context.Context) (string, error)
	sendMail sendMailFunc
	log      *zerolog.Logger
}

// NewEmailChannel builds the channel. resolveTo yields the configured
// recipient at send time, so settings edits take effect without rewiring.
func NewEmailChannel(cfg config.EmailConfig, resolveTo func(ctx context.Context) (string, error), logger *zerolog.Logger) *EmailChannel {
	chLog := logger.With().Str("component", "EmailChannel").Logger()
	return &EmailChannel{
		cfg:      cfg,
		to:       resolveTo,
		sendMail: smtp.SendMail,
		log:      &chLog,
	}
}

func (e *EmailChannel) Name() string { return ChannelEmail }

func (e *EmailChannel) Send(ctx context.Context, p model.ReminderPayload) error {
	to, err := e.to(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(to) == "" {
		return domain.ErrEmailNotConfigured
	}

	subject := fmt.Sprintf("Voucher expiring: %s (%d days left)", p.BrandName, p.DaysLeft)
	body := fmt.Sprintf("Your %s voucher expires in %d day(s). Open VoucherVault to use it before it's gone.", p.BrandName, p.DaysLeft)
	msg := []byte("From: " + e.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.SMTPHost)
	}
	addr := fmt.Sprintf("%s:%d", e.cfg.SMTPHost, e.cfg.SMTPPort)

	// smtp.SendMail has no context support; run it on the side and
	// honor the dispatch timeout here.
	done := make(chan error, 1)
	go func() { done <- e.sendMail(addr, auth, e.cfg.From, []string{to}, msg) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
