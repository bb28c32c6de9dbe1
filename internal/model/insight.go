package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a list of strings as a JSON array in a text column for
// portability across MySQL versions.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list failed: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	if err := json.Unmarshal(raw, l); err != nil {
		return fmt.Errorf("unmarshal string list failed: %w", err)
	}
	return nil
}

// Insight is the persisted AI analysis result for one uploaded file. Records
// are created by a completed analysis run and never updated in place. Nothing
// enforces uniqueness per file: re-analysis appends another record.
type Insight struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"not null;index" json:"user_id"`
	FileID             uint       `gorm:"not null;index" json:"file_id"`
	SummaryEnglish     string     `gorm:"type:text" json:"summary_english"`
	SummaryRomanUrdu   string     `gorm:"type:text" json:"summary_roman_urdu"`
	Highlights         StringList `gorm:"type:text" json:"highlights"`
	QuestionsForDoctor StringList `gorm:"type:text" json:"questions_for_doctor"`
	Suggestions        StringList `gorm:"type:text" json:"suggestions"`
	CreatedAt          time.Time  `json:"created_at"`
}
