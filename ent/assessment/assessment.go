// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParticipantID holds the string denoting the participant_id field in the database.
	FieldParticipantID = "participant_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDominantStyle holds the string denoting the dominant_style field in the database.
	FieldDominantStyle = "dominant_style"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldSubtotals holds the string denoting the subtotals field in the database.
	FieldSubtotals = "subtotals"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldParticipantID,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDominantStyle,
	FieldTotalScore,
	FieldSubtotals,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ParticipantIDValidator is a validator for the "participant_id" field. It is called by the builders before save.
	ParticipantIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParticipantID orders the results by the participant_id field.
func ByParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDominantStyle orders the results by the dominant_style field.
func ByDominantStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDominantStyle, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}
