package dto

import (
	"annur_backend/internals/features/grades/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type GradeRequest struct {
	GradeStudentName string `json:"grade_student_name"`
	GradeSubject     string `json:"grade_subject"`
	GradeScore       int    `json:"grade_score"`
	GradeTerm        string `json:"grade_term"`
	GradeNotes       string `json:"grade_notes"`
}

type GradeUpdateRequest struct {
	GradeStudentName *string `json:"grade_student_name"`
	GradeSubject     *string `json:"grade_subject"`
	GradeScore       *int    `json:"grade_score"`
	GradeTerm        *string `json:"grade_term"`
	GradeNotes       *string `json:"grade_notes"`
}

func (r *GradeRequest) ApplyScalar(m *model.GradeModel) {
	m.GradeStudentName = r.GradeStudentName
	m.GradeSubject = r.GradeSubject
	m.GradeScore = r.GradeScore
	if r.GradeTerm != "" {
		m.GradeTerm = r.GradeTerm
	}
	m.GradeNotes = r.GradeNotes
}

func (r *GradeUpdateRequest) ApplyScalar(m *model.GradeModel) {
	if r.GradeStudentName != nil {
		m.GradeStudentName = *r.GradeStudentName
	}
	if r.GradeSubject != nil {
		m.GradeSubject = *r.GradeSubject
	}
	if r.GradeScore != nil {
		m.GradeScore = *r.GradeScore
	}
	if r.GradeTerm != nil {
		m.GradeTerm = *r.GradeTerm
	}
	if r.GradeNotes != nil {
		m.GradeNotes = *r.GradeNotes
	}
}

// ================== RESPONSE ==================
type GradeResponse struct {
	GradeID          uuid.UUID `json:"grade_id"`
	GradeCenterID    uuid.UUID `json:"grade_center_id"`
	GradeStudentName string    `json:"grade_student_name"`
	GradeSubject     string    `json:"grade_subject"`
	GradeScore       int       `json:"grade_score"`
	GradeTerm        string    `json:"grade_term"`
	GradeNotes       string    `json:"grade_notes"`
	GradeCreatedAt   string    `json:"grade_created_at"`
	GradeUpdatedAt   string    `json:"grade_updated_at"`
}

func ToGradeResponse(m *model.GradeModel) *GradeResponse {
	return &GradeResponse{
		GradeID:          m.GradeID,
		GradeCenterID:    m.GradeCenterID,
		GradeStudentName: m.GradeStudentName,
		GradeSubject:     m.GradeSubject,
		GradeScore:       m.GradeScore,
		GradeTerm:        m.GradeTerm,
		GradeNotes:       m.GradeNotes,
		GradeCreatedAt:   m.GradeCreatedAt.Format("2006-01-02 15:04:05"),
		GradeUpdatedAt:   m.GradeUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToGradeResponseList(models []model.GradeModel) []GradeResponse {
	result := make([]GradeResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToGradeResponse(&m))
	}
	return result
}
