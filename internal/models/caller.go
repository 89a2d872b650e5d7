package models

// Caller is an already-authenticated identity attached to a request by the
// auth middleware. The core performs no authentication itself, only ownership
// checks against Caller.ID.
type Caller struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// Name returns the display name, or the anonymous fallback when empty.
func (c Caller) Name() string {
	if c.DisplayName == "" {
		return "익명 사용자"
	}
	return c.DisplayName
}
