package adplatform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newGoogleTestClient(baseURL string) *GoogleClient {
	return NewGoogleClient(baseURL, "v18", "dev-token", "access-token", "1234567890", zap.NewNop())
}

func TestGooglePauseCampaign(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		if r.Header.Get("developer-token") != "dev-token" {
			t.Errorf("developer-token header = %q", r.Header.Get("developer-token"))
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newGoogleTestClient(srv.URL)
	if err := client.PauseCampaign(context.Background(), "555"); err != nil {
		t.Fatalf("PauseCampaign() error = %v", err)
	}

	if gotPath != "/v18/customers/1234567890/campaigns:mutate" {
		t.Errorf("path = %q", gotPath)
	}

	ops := gotBody["operations"].([]any)
	update := ops[0].(map[string]any)["update"].(map[string]any)
	if update["status"] != "PAUSED" {
		t.Errorf("status = %v, want PAUSED", update["status"])
	}
	if update["resourceName"] != "customers/1234567890/campaigns/555" {
		t.Errorf("resourceName = %v", update["resourceName"])
	}
}

func TestGoogleSetDailyBudgetResolvesBudgetResource(t *testing.T) {
	var paths []string
	var mutateBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		if strings.HasSuffix(r.URL.Path, "googleAds:search") {
			_, _ = w.Write([]byte(`{"results":[{"campaign":{"campaignBudget":"customers/1234567890/campaignBudgets/99"}}]}`))
			return
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &mutateBody)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newGoogleTestClient(srv.URL)
	if err := client.SetDailyBudget(context.Background(), "555", 110); err != nil {
		t.Fatalf("SetDailyBudget() error = %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected search then mutate, got %v", paths)
	}
	if !strings.HasSuffix(paths[0], "googleAds:search") {
		t.Errorf("first call = %q, want budget resource lookup", paths[0])
	}
	if !strings.HasSuffix(paths[1], "campaignBudgets:mutate") {
		t.Errorf("second call = %q, want budget mutation", paths[1])
	}

	ops := mutateBody["operations"].([]any)
	update := ops[0].(map[string]any)["update"].(map[string]any)
	if update["resourceName"] != "customers/1234567890/campaignBudgets/99" {
		t.Errorf("resourceName = %v, want resolved budget resource", update["resourceName"])
	}
	if update["amountMicros"] != "110000000" {
		t.Errorf("amountMicros = %v, want 110000000", update["amountMicros"])
	}
}

func TestGoogleSetDailyBudgetFailsWithoutBudgetResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := newGoogleTestClient(srv.URL)
	err := client.SetDailyBudget(context.Background(), "555", 110)
	if err == nil || !strings.Contains(err.Error(), "no budget resource") {
		t.Fatalf("SetDailyBudget() error = %v, want missing budget resource error", err)
	}
}

func TestGoogleRequiresCredentials(t *testing.T) {
	client := NewGoogleClient("http://localhost:0", "v18", "", "", "", zap.NewNop())
	if err := client.PauseCampaign(context.Background(), "555"); err == nil {
		t.Fatal("PauseCampaign() expected error without credentials")
	}
}
