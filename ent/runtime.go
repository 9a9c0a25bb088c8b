// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyal/worklens/ent/answer"
	"github.com/priyal/worklens/ent/assessment"
	"github.com/priyal/worklens/ent/participant"
	"github.com/priyal/worklens/ent/question"
	"github.com/priyal/worklens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescAssessmentID is the schema descriptor for assessment_id field.
	answerDescAssessmentID := answerFields[0].Descriptor()
	// answer.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	answer.AssessmentIDValidator = answerDescAssessmentID.Validators[0].(func(string) error)
	// answerDescQuestionID is the schema descriptor for question_id field.
	answerDescQuestionID := answerFields[1].Descriptor()
	// answer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answer.QuestionIDValidator = answerDescQuestionID.Validators[0].(func(string) error)
	// answerDescValue is the schema descriptor for value field.
	answerDescValue := answerFields[2].Descriptor()
	// answer.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	answer.ValueValidator = answerDescValue.Validators[0].(func(int) error)
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[3].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescParticipantID is the schema descriptor for participant_id field.
	assessmentDescParticipantID := assessmentFields[1].Descriptor()
	// assessment.ParticipantIDValidator is a validator for the "participant_id" field. It is called by the builders before save.
	assessment.ParticipantIDValidator = assessmentDescParticipantID.Validators[0].(func(string) error)
	// assessmentDescStatus is the schema descriptor for status field.
	assessmentDescStatus := assessmentFields[2].Descriptor()
	// assessment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	assessment.StatusValidator = assessmentDescStatus.Validators[0].(func(string) error)
	// assessmentDescStartedAt is the schema descriptor for started_at field.
	assessmentDescStartedAt := assessmentFields[3].Descriptor()
	// assessment.DefaultStartedAt holds the default value on creation for the started_at field.
	assessment.DefaultStartedAt = assessmentDescStartedAt.Default.(func() time.Time)
	// assessmentDescID is the schema descriptor for id field.
	assessmentDescID := assessmentFields[0].Descriptor()
	// assessment.DefaultID holds the default value on creation for the id field.
	assessment.DefaultID = assessmentDescID.Default.(func() string)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescFullName is the schema descriptor for full_name field.
	participantDescFullName := participantFields[1].Descriptor()
	// participant.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	participant.FullNameValidator = participantDescFullName.Validators[0].(func(string) error)
	// participantDescEmail is the schema descriptor for email field.
	participantDescEmail := participantFields[2].Descriptor()
	// participant.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	participant.EmailValidator = participantDescEmail.Validators[0].(func(string) error)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[5].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	// participantDescUpdatedAt is the schema descriptor for updated_at field.
	participantDescUpdatedAt := participantFields[6].Descriptor()
	// participant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	participant.DefaultUpdatedAt = participantDescUpdatedAt.Default.(func() time.Time)
	// participant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	participant.UpdateDefaultUpdatedAt = participantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// participantDescID is the schema descriptor for id field.
	participantDescID := participantFields[0].Descriptor()
	// participant.DefaultID holds the default value on creation for the id field.
	participant.DefaultID = participantDescID.Default.(func() string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescStyle is the schema descriptor for style field.
	questionDescStyle := questionFields[2].Descriptor()
	// question.StyleValidator is a validator for the "style" field. It is called by the builders before save.
	question.StyleValidator = questionDescStyle.Validators[0].(func(string) error)
	// questionDescGroupLabel is the schema descriptor for group_label field.
	questionDescGroupLabel := questionFields[3].Descriptor()
	// question.GroupLabelValidator is a validator for the "group_label" field. It is called by the builders before save.
	question.GroupLabelValidator = questionDescGroupLabel.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[4].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
}
