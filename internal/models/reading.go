package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DrawnCard is one card in a saved reading. Only the id and orientation are
// persisted; display metadata (name, image) is resolved from the card catalog
// at read time.
type DrawnCard struct {
	CardID     string `json:"card_id"`
	IsReversed bool   `json:"is_reversed"`
	Position   string `json:"position,omitempty"`

	// Resolved at read time, never persisted.
	Name     string `json:"name,omitempty"`
	ImageSrc string `json:"image_src,omitempty"`
}

// DrawnCards is stored as a single JSON column, ordered as drawn.
type DrawnCards []DrawnCard

// Value implements driver.Valuer.
func (d DrawnCards) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *DrawnCards) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for DrawnCards: %T", value)
	}
}

// SavedReading is a stored tarot reading. Immutable after creation except for
// deletion by its owner.
type SavedReading struct {
	ID             string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID         string     `gorm:"not null;index;type:varchar(64)" json:"user_id"`
	Question       string     `gorm:"type:text;not null" json:"question"`
	SpreadName     string     `gorm:"not null" json:"spread_name"`
	SpreadNumCards int        `gorm:"not null" json:"spread_num_cards"`
	DrawnCards     DrawnCards `gorm:"type:text" json:"drawn_cards"`
	Interpretation string     `gorm:"type:text;column:interpretation_text" json:"interpretation_text"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
}
