// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDisplayNumber holds the string denoting the display_number field in the database.
	FieldDisplayNumber = "display_number"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldGroupLabel holds the string denoting the group_label field in the database.
	FieldGroupLabel = "group_label"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldDisplayNumber,
	FieldStyle,
	FieldGroupLabel,
	FieldPrompt,
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
	// StyleValidator is a validator for the "style" field. It is called by the builders before save.
	StyleValidator func(string) error
	// GroupLabelValidator is a validator for the "group_label" field. It is called by the builders before save.
	GroupLabelValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDisplayNumber orders the results by the display_number field.
func ByDisplayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayNumber, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByGroupLabel orders the results by the group_label field.
func ByGroupLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupLabel, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}
