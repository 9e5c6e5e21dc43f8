package optimizer

import "github.com/abrahub/backend/internal/models"

// NormalizeMeta maps one meta_campaigns cache row onto the canonical shape.
// Straight 1:1 field mapping, no unit conversion; zero values stay zero.
func NormalizeMeta(c models.MetaCampaign) models.NormalizedCampaign {
	return models.NormalizedCampaign{
		CampaignID:    c.CampaignID,
		Name:          c.Name,
		Status:        c.Status,
		Spend:         c.Spend,
		CostPerResult: c.CostPerResult,
		CTR:           c.CTR,
		Impressions:   c.Impressions,
		Conversions:   c.Conversions,
		DailyBudget:   c.DailyBudget,
		Platform:      models.PlatformMeta,
	}
}

// NormalizeGoogle maps one google_campaigns cache row onto the canonical
// shape. Google names the same figures cost / cost_per_conversion.
func NormalizeGoogle(c models.GoogleCampaign) models.NormalizedCampaign {
	return models.NormalizedCampaign{
		CampaignID:    c.CampaignID,
		Name:          c.Name,
		Status:        c.Status,
		Spend:         c.Cost,
		CostPerResult: c.CostPerConversion,
		CTR:           c.CTR,
		Impressions:   c.Impressions,
		Conversions:   c.Conversions,
		DailyBudget:   c.DailyBudget,
		Platform:      models.PlatformGoogle,
	}
}
