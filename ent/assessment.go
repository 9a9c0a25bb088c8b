// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyal/worklens/ent/assessment"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Links to Participant
	ParticipantID string `json:"participant_id,omitempty"`
	// in_progress or completed
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Style code with the highest subtotal
	DominantStyle string `json:"dominant_style,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// Per-style score subtotals keyed by style code
	Subtotals    map[string]int `json:"subtotals,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldSubtotals:
			values[i] = new([]byte)
		case assessment.FieldTotalScore:
			values[i] = new(sql.NullInt64)
		case assessment.FieldID, assessment.FieldParticipantID, assessment.FieldStatus, assessment.FieldDominantStyle:
			values[i] = new(sql.NullString)
		case assessment.FieldStartedAt, assessment.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (_m *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assessment.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case assessment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case assessment.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case assessment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case assessment.FieldDominantStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dominant_style", values[i])
			} else if value.Valid {
				_m.DominantStyle = value.String
			}
		case assessment.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case assessment.FieldSubtotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subtotals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subtotals); err != nil {
					return fmt.Errorf("unmarshal field subtotals: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (_m *Assessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assessment) Unwrap() *Assessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("dominant_style=")
	builder.WriteString(_m.DominantStyle)
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("subtotals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotals))
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
