package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Generation task names. Each task has at most one live PromptConfig row.
const (
	TaskTarot = "tarot"
	TaskDream = "dream"
)

// SafetySetting is one (category, threshold) pair passed through to the
// generation provider.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// SafetySettings is stored as a single JSON column.
type SafetySettings []SafetySetting

// Value implements driver.Valuer.
func (s SafetySettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *SafetySettings) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for SafetySettings: %T", value)
	}
}

// PromptConfig is an operator-supplied override for a generation task. A
// missing or blank row is not an error; resolution falls back to compiled-in
// defaults.
type PromptConfig struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TaskName       string         `gorm:"not null;uniqueIndex" json:"task_name"`
	Template       string         `gorm:"type:text" json:"template"`
	Model          string         `json:"model"`
	SafetySettings SafetySettings `gorm:"type:text" json:"safety_settings"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
