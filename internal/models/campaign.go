package models

import "time"

// Platforms supported by the optimizer.
const (
	PlatformMeta   = "meta"
	PlatformGoogle = "google"
)

func IsValidPlatform(p string) bool {
	return p == PlatformMeta || p == PlatformGoogle
}

// MetaCampaign mirrors one row of the meta_campaigns cache table, written
// wholesale by the sync job and partially updated after executed mutations.
type MetaCampaign struct {
	CampaignID    string    `json:"campaign_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"` // ACTIVE / PAUSED / ...
	Spend         float64   `json:"spend"`
	CostPerResult float64   `json:"cost_per_result"`
	CTR           float64   `json:"ctr"`
	Impressions   int64     `json:"impressions"`
	Clicks        int64     `json:"clicks"`
	Conversions   int64     `json:"conversions"`
	DailyBudget   float64   `json:"daily_budget"`
	SyncedAt      time.Time `json:"synced_at"`
}

// GoogleCampaign mirrors one row of the google_campaigns cache table.
// Field names differ from Meta (cost / cost_per_conversion), the normalizer
// maps both shapes onto NormalizedCampaign.
type GoogleCampaign struct {
	CampaignID        string    `json:"campaign_id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"` // ENABLED / PAUSED / ...
	Cost              float64   `json:"cost"`
	CostPerConversion float64   `json:"cost_per_conversion"`
	CTR               float64   `json:"ctr"`
	Impressions       int64     `json:"impressions"`
	Clicks            int64     `json:"clicks"`
	Conversions       int64     `json:"conversions"`
	DailyBudget       float64   `json:"daily_budget"`
	SyncedAt          time.Time `json:"synced_at"`
}

// NormalizedCampaign is the canonical shape the rule evaluator works with.
type NormalizedCampaign struct {
	CampaignID    string  `json:"campaign_id"`
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	Spend         float64 `json:"spend"`
	CostPerResult float64 `json:"cost_per_result"`
	CTR           float64 `json:"ctr"`
	Impressions   int64   `json:"impressions"`
	Conversions   int64   `json:"conversions"`
	DailyBudget   float64 `json:"daily_budget"`
	Platform      string  `json:"platform"`
}
