package paypalapi

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

// StatusFetcher is the slice of the PayPal billing API the sync job needs.
type StatusFetcher interface {
	GetSubscriptionStatus(ctx context.Context, subscriptionID string) (types.PayPalStatus, error)
}

type Client struct {
	pp  *paypal.Client
	log *zap.SugaredLogger
}

func New(cfg *cfgpkg.Config, log *zap.SugaredLogger) (StatusFetcher, error) {
	base := paypal.APIBaseSandBox
	if cfg.PayPal.IsProd {
		base = paypal.APIBaseLive
	}
	pp, err := paypal.NewClient(cfg.PayPal.ClientID, cfg.PayPal.Secret, base)
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal client: %w", err)
	}
	return &Client{pp: pp, log: log}, nil
}

func (c *Client) GetSubscriptionStatus(ctx context.Context, subscriptionID string) (types.PayPalStatus, error) {
	if _, err := c.pp.GetAccessToken(ctx); err != nil {
		return "", fmt.Errorf("failed to get paypal access token: %w", err)
	}
	resp, err := c.pp.GetSubscriptionDetails(ctx, subscriptionID)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription details for %s: %w", subscriptionID, err)
	}
	return types.PayPalStatus(resp.SubscriptionStatus), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
