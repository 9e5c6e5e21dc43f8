package services

import (
	"context"
	"errors"
	"testing"

	"github.com/abrahub/backend/internal/config"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/optimizer"
	"go.uber.org/zap"
)

func TestRunRejectsUnknownPlatform(t *testing.T) {
	// platform validation happens before any repo access, so a bare service
	// is enough here
	svc := NewOptimizerService(nil, nil, nil, nil, nil, nil, &config.Config{}, zap.NewNop())

	for _, platform := range []string{"bing", "tiktok", "META"} {
		t.Run(platform, func(t *testing.T) {
			_, err := svc.Run(context.Background(), platform)
			if !errors.Is(err, ErrInvalidPlatform) {
				t.Fatalf("Run(%q) error = %v, want ErrInvalidPlatform", platform, err)
			}
		})
	}
}

func TestDecisionAuditTypes(t *testing.T) {
	want := map[string]string{
		optimizer.ActionPause: models.AuditOptimizerPause,
		optimizer.ActionBoost: models.AuditOptimizerBoost,
		optimizer.ActionKeep:  models.AuditOptimizerKeep,
		optimizer.ActionSkip:  models.AuditOptimizerSkip,
	}

	for action, wantType := range want {
		if got := decisionAuditTypes[action]; got != wantType {
			t.Errorf("decisionAuditTypes[%q] = %q, want %q", action, got, wantType)
		}
	}
	if len(decisionAuditTypes) != len(want) {
		t.Errorf("decisionAuditTypes has %d entries, want %d", len(decisionAuditTypes), len(want))
	}
}
