package newsletter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/logctx"
	"github.com/YoavDdev/studio-boaz-backend/pkg/tool"
)

// Sender abstracts the SMTP dialer so broadcast logic is testable.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Service struct {
	cfg    *cfgpkg.Config
	db     *gorm.DB
	log    *zap.SugaredLogger
	sender Sender
}

func NewService(cfg *cfgpkg.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &Service{cfg: cfg, db: db, log: log, sender: dialer}
}

func (s *Service) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load subscriber: %w", err)
	}

	now := time.Now()
	if sub.ID == "" {
		sub = models.NewsletterSubscriber{
			ID:           tool.GenerateUUIDV7(),
			Email:        email,
			Active:       true,
			SubscribedAt: now,
		}
	} else {
		sub.Active = true
		sub.SubscribedAt = now
		sub.UnsubscribedAt = nil
	}
	if err := s.db.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to save subscriber: %w", err)
	}
	return &sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).
		Where("email = ? AND active = ?", email, true).
		Updates(map[string]interface{}{"active": false, "unsubscribed_at": now})
	if res.Error != nil {
		return fmt.Errorf("failed to unsubscribe: %w", res.Error)
	}
	return nil
}

type BroadcastResult struct {
	Sent   int               `json:"sent"`
	Failed int               `json:"failed"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Broadcast sends subject/htmlBody to every active subscriber. A failure for
// one recipient is recorded and does not stop the rest.
func (s *Service) Broadcast(ctx context.Context, subject, htmlBody string) (*BroadcastResult, error) {
	var subs []*models.NewsletterSubscriber
	if err := s.db.WithContext(ctx).Where("active = ?", true).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	res := &BroadcastResult{Errors: map[string]string{}}
	from := s.cfg.SMTP.FromAddress
	for _, sub := range subs {
		m := gomail.NewMessage()
		m.SetAddressHeader("From", from, s.cfg.SMTP.FromName)
		m.SetHeader("To", sub.Email)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", htmlBody)

		if err := s.sender.DialAndSend(m); err != nil {
			res.Failed++
			res.Errors[sub.Email] = err.Error()
			logctx.FromCtx(ctx, s.log).Warnw("newsletter send failed", "email", sub.Email, "err", err)
			continue
		}
		res.Sent++
	}
	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	logctx.FromCtx(ctx, s.log).Infow("newsletter broadcast finished", "sent", res.Sent, "failed", res.Failed)
	return res, nil
}

var Module = fx.Options(
	fx.Provide(NewService),
)
