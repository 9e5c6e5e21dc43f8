package adplatform

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abrahub/backend/internal/models"
	"go.uber.org/zap"
)

// MetaClient talks to the Meta Graph API. Campaigns are mutated directly by
// campaign id; daily budgets are sent in minor units (cents).
type MetaClient struct {
	baseURL     string
	apiVersion  string
	accessToken string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewMetaClient(baseURL, apiVersion, accessToken string, log *zap.Logger) *MetaClient {
	return &MetaClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiVersion:  apiVersion,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

func (c *MetaClient) Name() string {
	return models.PlatformMeta
}

func (c *MetaClient) PauseCampaign(ctx context.Context, campaignID string) error {
	return c.postForm(ctx, campaignID, url.Values{"status": {"PAUSED"}})
}

func (c *MetaClient) SetDailyBudget(ctx context.Context, campaignID string, budget float64) error {
	cents := int64(math.Round(budget * 100))
	return c.postForm(ctx, campaignID, url.Values{"daily_budget": {fmt.Sprintf("%d", cents)}})
}

func (c *MetaClient) postForm(ctx context.Context, campaignID string, params url.Values) error {
	if c.accessToken == "" {
		return fmt.Errorf("meta access token is not configured")
	}
	params.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiVersion, campaignID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("meta api unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("meta api returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
