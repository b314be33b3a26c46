package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	GradeSubjects = []string{"Quran", "Tajwid", "Fiqh", "Aqeedah", "Arabic", "Sirah", "Akhlaq"}
	GradeTerms    = []string{"Term 1", "Term 2", "Term 3", "Term 4"}
)

type GradeModel struct {
	GradeID       uuid.UUID `gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_id"`
	GradeCenterID uuid.UUID `gorm:"column:grade_center_id;type:uuid;not null;index:idx_grades_center_id" json:"grade_center_id"`

	GradeStudentName string `gorm:"column:grade_student_name;type:varchar(100);not null" json:"grade_student_name"`
	GradeSubject     string `gorm:"column:grade_subject;type:varchar(50);not null" json:"grade_subject"`
	GradeScore       int    `gorm:"column:grade_score;type:smallint;not null" json:"grade_score"`
	GradeTerm        string `gorm:"column:grade_term;type:varchar(20);default:'Term 1'" json:"grade_term"`
	GradeNotes       string `gorm:"column:grade_notes;type:text" json:"grade_notes"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;type:timestamptz;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;type:timestamptz;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;type:timestamptz;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string {
	return "grades"
}
