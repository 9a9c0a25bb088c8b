// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "value", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
			{
				Name:    "answer_assessment_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[2]},
			},
		},
	}
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "dominant_style", Type: field.TypeString, Nullable: true},
		{Name: "total_score", Type: field.TypeInt, Nullable: true},
		{Name: "subtotals", Type: field.TypeJSON, Nullable: true},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_participant_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "organization", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "display_number", Type: field.TypeInt, Unique: true},
		{Name: "style", Type: field.TypeString},
		{Name: "group_label", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_display_number",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AssessmentsTable,
		ParticipantsTable,
		QuestionsTable,
	}
)

func init() {
}
