package services

import (
	"testing"

	"github.com/abrahub/backend/internal/models"
)

func TestResolutionAuditType(t *testing.T) {
	tests := []struct {
		verb       string
		actionType string
		want       string
	}{
		{"approve", models.ActionTypePause, models.AuditApprovePause},
		{"approve", models.ActionTypeBoost, models.AuditApproveBoost},
		{"approve", models.ActionTypeAdjustBudget, models.AuditApproveBoost},
		{"reject", models.ActionTypePause, models.AuditRejectPause},
		{"reject", models.ActionTypeBoost, models.AuditRejectBoost},
		{"reject", models.ActionTypeAdjustBudget, models.AuditRejectBoost},
	}

	for _, tt := range tests {
		t.Run(tt.verb+"_"+tt.actionType, func(t *testing.T) {
			if got := resolutionAuditType(tt.verb, tt.actionType); got != tt.want {
				t.Errorf("resolutionAuditType(%q, %q) = %q, want %q", tt.verb, tt.actionType, got, tt.want)
			}
		})
	}
}
