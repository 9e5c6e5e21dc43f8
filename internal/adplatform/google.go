package adplatform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/abrahub/backend/internal/models"
	"go.uber.org/zap"
)

// GoogleClient talks to the Google Ads REST API. Unlike Meta, a campaign's
// daily budget lives on a separate budget resource that has to be resolved
// with a search query before it can be mutated.
type GoogleClient struct {
	baseURL        string
	apiVersion     string
	developerToken string
	accessToken    string
	customerID     string
	httpClient     *http.Client
	log            *zap.Logger
}

func NewGoogleClient(baseURL, apiVersion, developerToken, accessToken, customerID string, log *zap.Logger) *GoogleClient {
	return &GoogleClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiVersion:     apiVersion,
		developerToken: developerToken,
		accessToken:    accessToken,
		customerID:     customerID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

func (c *GoogleClient) Name() string {
	return models.PlatformGoogle
}

func (c *GoogleClient) PauseCampaign(ctx context.Context, campaignID string) error {
	body := map[string]any{
		"operations": []map[string]any{
			{
				"update": map[string]any{
					"resourceName": fmt.Sprintf("customers/%s/campaigns/%s", c.customerID, campaignID),
					"status":       "PAUSED",
				},
				"updateMask": "status",
			},
		},
	}
	return c.post(ctx, fmt.Sprintf("customers/%s/campaigns:mutate", c.customerID), body, nil)
}

func (c *GoogleClient) SetDailyBudget(ctx context.Context, campaignID string, budget float64) error {
	budgetResource, err := c.resolveBudgetResource(ctx, campaignID)
	if err != nil {
		return err
	}

	micros := int64(math.Round(budget * 1_000_000))
	body := map[string]any{
		"operations": []map[string]any{
			{
				"update": map[string]any{
					"resourceName": budgetResource,
					"amountMicros": fmt.Sprintf("%d", micros),
				},
				"updateMask": "amount_micros",
			},
		},
	}
	return c.post(ctx, fmt.Sprintf("customers/%s/campaignBudgets:mutate", c.customerID), body, nil)
}

type googleSearchResponse struct {
	Results []struct {
		Campaign struct {
			CampaignBudget string `json:"campaignBudget"`
		} `json:"campaign"`
	} `json:"results"`
}

// resolveBudgetResource finds the budget resource name attached to a
// campaign. Platform API quirk, kept out of callers entirely.
func (c *GoogleClient) resolveBudgetResource(ctx context.Context, campaignID string) (string, error) {
	query := fmt.Sprintf("SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = %s", campaignID)
	var result googleSearchResponse
	if err := c.post(ctx, fmt.Sprintf("customers/%s/googleAds:search", c.customerID), map[string]any{"query": query}, &result); err != nil {
		return "", err
	}

	if len(result.Results) == 0 || result.Results[0].Campaign.CampaignBudget == "" {
		return "", fmt.Errorf("no budget resource found for campaign %s", campaignID)
	}
	return result.Results[0].Campaign.CampaignBudget, nil
}

func (c *GoogleClient) post(ctx context.Context, path string, body any, out any) error {
	if c.developerToken == "" || c.customerID == "" {
		return fmt.Errorf("google ads credentials are not configured")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiVersion, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("developer-token", c.developerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("google ads api unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("google ads api returned %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}
