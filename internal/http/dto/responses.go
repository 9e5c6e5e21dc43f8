package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// ResolveActionResponse is returned by the approve/reject endpoints.
type ResolveActionResponse struct {
	Success      bool   `json:"success"`
	ActionID     string `json:"action_id"`
	ActionType   string `json:"action_type"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Status       string `json:"status"`
}
