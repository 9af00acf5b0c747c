package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string list as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		// nil slices are stored as an empty JSON array, never NULL
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Topic is a row of dsa_topics. Oracle stores empty strings as NULL, so every
// optional text column is nullable.
type Topic struct {
	ID                    string         `db:"id"`
	Title                 string         `db:"title"`
	Description           string         `db:"description"`
	Category              string         `db:"category"`
	Difficulty            string         `db:"difficulty"`
	Position              int            `db:"position"`
	ExtendedDefinition    sql.NullString `db:"extended_definition"`
	Example               sql.NullString `db:"example"`
	Syntax                sql.NullString `db:"syntax"`
	VoiceExplanation      sql.NullString `db:"voice_explanation"`
	RealWorldApplications sql.NullString `db:"real_world_applications"`
	Pseudocode            sql.NullString `db:"pseudocode"`
	KeyConcepts           sql.NullString `db:"key_concepts"`
	ImplementationCode    sql.NullString `db:"implementation_code"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

// QuizQuestion is a row of dsa_quiz_questions, ordered within its topic by Position.
type QuizQuestion struct {
	ID            string         `db:"id"`
	TopicID       string         `db:"topic_id"`
	Position      int            `db:"position"`
	Question      string         `db:"question"`
	Options       StringSlice    `db:"options"`
	CorrectAnswer int            `db:"correct_answer"`
	Explanation   sql.NullString `db:"explanation"`
	CreatedAt     time.Time      `db:"created_at"`
}
