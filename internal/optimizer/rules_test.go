package optimizer

import (
	"strings"
	"testing"

	"github.com/abrahub/backend/internal/models"
)

func testConfig() models.OptimizationConfig {
	return models.OptimizationConfig{
		TargetCPA:                50,
		MaxCPAMultiplier:         3,
		MinSpendToEvaluate:       30,
		MinImpressionsToEvaluate: 1000,
		BudgetIncreasePct:        20,
		MaxDailyBudget:           500,
		OptimizerEnabled:         true,
		AutoPauseEnabled:         true,
		AutoBoostEnabled:         true,
	}
}

func TestEvaluate(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name         string
		campaign     models.NormalizedCampaign
		wantAction   string
		reasonSubstr string
	}{
		{
			name: "runaway cpa pauses",
			campaign: models.NormalizedCampaign{
				CampaignID: "c1", Name: "c1",
				Spend: 300, Impressions: 10000, CostPerResult: 200, Conversions: 5,
			},
			wantAction:   ActionPause,
			reasonSubstr: "exceeds limit",
		},
		{
			name: "below minimums always skips",
			campaign: models.NormalizedCampaign{
				CampaignID: "c2", Name: "c2",
				Spend: 20, Impressions: 50, CostPerResult: 999, Conversions: 0,
			},
			wantAction:   ActionSkip,
			reasonSubstr: "insufficient data",
		},
		{
			name: "no conversions after meaningful spend pauses",
			campaign: models.NormalizedCampaign{
				CampaignID: "c3", Name: "c3",
				Spend: 180, Impressions: 5000, CostPerResult: 0, Conversions: 0,
			},
			wantAction:   ActionPause,
			reasonSubstr: "no conversions",
		},
		{
			name: "high performer boosts",
			campaign: models.NormalizedCampaign{
				CampaignID: "c4", Name: "c4",
				Spend: 120, Impressions: 8000, CostPerResult: 30, Conversions: 4,
			},
			wantAction:   ActionBoost,
			reasonSubstr: "below 70%",
		},
		{
			name: "cpa within range keeps",
			campaign: models.NormalizedCampaign{
				CampaignID: "c5", Name: "c5",
				Spend: 200, Impressions: 9000, CostPerResult: 48, Conversions: 4,
			},
			wantAction:   ActionKeep,
			reasonSubstr: "within acceptable range",
		},
		{
			name: "zero conversions below meaningful spend keeps with N/A",
			campaign: models.NormalizedCampaign{
				CampaignID: "c6", Name: "c6",
				Spend: 100, Impressions: 5000, CostPerResult: 0, Conversions: 0,
			},
			wantAction:   ActionKeep,
			reasonSubstr: "N/A",
		},
		{
			name: "runaway cpa wins over high conversions",
			campaign: models.NormalizedCampaign{
				CampaignID: "c7", Name: "c7",
				Spend: 2000, Impressions: 50000, CostPerResult: 160, Conversions: 12,
			},
			wantAction: ActionPause,
		},
		{
			name: "insufficient impressions skip wins over runaway cpa",
			campaign: models.NormalizedCampaign{
				CampaignID: "c8", Name: "c8",
				Spend: 500, Impressions: 200, CostPerResult: 400, Conversions: 1,
			},
			wantAction: ActionSkip,
		},
		{
			name: "boost needs at least three conversions",
			campaign: models.NormalizedCampaign{
				CampaignID: "c9", Name: "c9",
				Spend: 60, Impressions: 4000, CostPerResult: 30, Conversions: 2,
			},
			wantAction: ActionKeep,
		},
		{
			name: "cpa exactly at boost threshold keeps",
			campaign: models.NormalizedCampaign{
				CampaignID: "c10", Name: "c10",
				Spend: 140, Impressions: 4000, CostPerResult: 35, Conversions: 4,
			},
			wantAction: ActionKeep,
		},
		{
			name: "cpa exactly at pause limit keeps",
			campaign: models.NormalizedCampaign{
				CampaignID: "c11", Name: "c11",
				Spend: 600, Impressions: 20000, CostPerResult: 150, Conversions: 4,
			},
			wantAction: ActionKeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.campaign, cfg)
			if d.Action != tt.wantAction {
				t.Fatalf("Evaluate() action = %q (%s), want %q", d.Action, d.Reason, tt.wantAction)
			}
			if tt.reasonSubstr != "" && !strings.Contains(d.Reason, tt.reasonSubstr) {
				t.Errorf("reason %q does not contain %q", d.Reason, tt.reasonSubstr)
			}
			if d.CampaignID != tt.campaign.CampaignID || d.CampaignName != tt.campaign.Name {
				t.Errorf("decision does not carry campaign identity: %+v", d)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	cfg := testConfig()
	campaign := models.NormalizedCampaign{
		CampaignID: "c1", Name: "repeat",
		Spend: 300, Impressions: 10000, CostPerResult: 200, Conversions: 5,
	}

	first := Evaluate(campaign, cfg)
	second := Evaluate(campaign, cfg)

	if first != second {
		t.Errorf("two evaluations of the same inputs differ:\n%+v\n%+v", first, second)
	}
}

func TestRuleOrderIsTotal(t *testing.T) {
	// every campaign matches exactly one outcome, regardless of how many
	// rule predicates would fire
	cfg := testConfig()
	campaigns := []models.NormalizedCampaign{
		{Spend: 20, Impressions: 50},
		{Spend: 300, Impressions: 10000, CostPerResult: 200, Conversions: 5},
		{Spend: 180, Impressions: 5000, Conversions: 0},
		{Spend: 120, Impressions: 8000, CostPerResult: 30, Conversions: 4},
		{Spend: 200, Impressions: 9000, CostPerResult: 48, Conversions: 4},
	}

	valid := map[string]bool{ActionPause: true, ActionBoost: true, ActionKeep: true, ActionSkip: true}
	for _, c := range campaigns {
		d := Evaluate(c, cfg)
		if !valid[d.Action] {
			t.Errorf("Evaluate produced unknown action %q for %+v", d.Action, c)
		}
		if d.Reason == "" {
			t.Errorf("Evaluate produced empty reason for %+v", c)
		}
	}
}
