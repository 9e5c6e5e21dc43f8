package adplatform

import "context"

// Client mutates campaigns on one ad network. Implementations hide platform
// quirks (notably Google's separate budget resource) from callers.
type Client interface {
	Name() string
	PauseCampaign(ctx context.Context, campaignID string) error
	SetDailyBudget(ctx context.Context, campaignID string, budget float64) error
}
