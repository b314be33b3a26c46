package dto

import (
	"annur_backend/internals/collection"
	"annur_backend/internals/features/grades/model"

	"github.com/google/uuid"
)

var GradeSchema = collection.Schema[model.GradeModel]{
	Name: "grade",
	GetID: func(m model.GradeModel) string {
		if m.GradeID == uuid.Nil {
			return ""
		}
		return m.GradeID.String()
	},
	SetID: func(m *model.GradeModel, id string) {
		if u, err := uuid.Parse(id); err == nil {
			m.GradeID = u
		}
	},
	SearchText: func(m model.GradeModel) []string {
		return []string{m.GradeStudentName, m.GradeSubject, m.GradeNotes}
	},
	Filters: map[string]func(model.GradeModel) string{
		"subject": func(m model.GradeModel) string { return m.GradeSubject },
		"term":    func(m model.GradeModel) string { return m.GradeTerm },
	},
	Defaults: func() model.GradeModel {
		return model.GradeModel{
			GradeTerm: "Term 1",
		}
	},
	Rules: []collection.Rule[model.GradeModel]{
		collection.Required("grade_student_name", func(m model.GradeModel) string { return m.GradeStudentName }, "Student name is required"),
		collection.MaxLen("grade_student_name", 100, func(m model.GradeModel) string { return m.GradeStudentName }, "Student name must be less than 100 characters"),
		collection.Required("grade_subject", func(m model.GradeModel) string { return m.GradeSubject }, "Subject is required"),
		collection.OneOf("grade_subject", model.GradeSubjects, func(m model.GradeModel) string { return m.GradeSubject }, "Subject is not in the allowed set"),
		collection.IntRange("grade_score", 0, 100, func(m model.GradeModel) int { return m.GradeScore }, "Score must be between 0 and 100"),
		collection.OneOf("grade_term", model.GradeTerms, func(m model.GradeModel) string { return m.GradeTerm }, "Term is not in the allowed set"),
	},
	Counters: []collection.Counter[model.GradeModel]{
		{Name: "excellent", Match: func(m model.GradeModel) bool { return m.GradeScore >= 90 }},
		{Name: "passing", Match: func(m model.GradeModel) bool { return m.GradeScore >= 60 }},
		{Name: "failing", Match: func(m model.GradeModel) bool { return m.GradeScore < 60 }},
	},
}
