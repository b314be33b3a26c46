package dto

import (
	"testing"

	"annur_backend/internals/collection"
	"annur_backend/internals/features/grades/model"

	"github.com/stretchr/testify/assert"
)

func validGrade(score int) model.GradeModel {
	m := GradeSchema.Defaults()
	m.GradeStudentName = "Ahmad Fauzi"
	m.GradeSubject = "Quran"
	m.GradeScore = score
	return m
}

func TestGradeScoreRange(t *testing.T) {
	cases := []struct {
		score int
		ok    bool
	}{
		{0, true},
		{60, true},
		{100, true},
		{-1, false},
		{101, false},
	}
	for _, tc := range cases {
		errs := collection.ValidateRecord(GradeSchema, validGrade(tc.score))
		if tc.ok {
			assert.Empty(t, errs, "score %d", tc.score)
		} else {
			assert.Contains(t, errs["grade_score"], "Score must be between 0 and 100", "score %d", tc.score)
		}
	}
}

func TestGradeSubjectMustBeKnown(t *testing.T) {
	m := validGrade(80)
	m.GradeSubject = "Matematika"

	errs := collection.ValidateRecord(GradeSchema, m)
	assert.Contains(t, errs["grade_subject"], "Subject is not in the allowed set")
}

func TestGradeCounters(t *testing.T) {
	records := []model.GradeModel{validGrade(95), validGrade(72), validGrade(40)}

	stats := collection.ComputeStats(GradeSchema, records)
	assert.Equal(t, 3, stats["total"])
	assert.Equal(t, 1, stats["excellent"])
	assert.Equal(t, 2, stats["passing"])
	assert.Equal(t, 1, stats["failing"])
}

func TestGradeAverageScore(t *testing.T) {
	records := []model.GradeModel{validGrade(80), validGrade(90)}

	avg := collection.AverageBy(records, func(m model.GradeModel) int { return m.GradeScore })
	assert.InDelta(t, 85.0, avg, 0.001)

	// koleksi kosong tidak boleh division-by-zero
	assert.Equal(t, 0.0, collection.AverageBy(nil, func(m model.GradeModel) int { return m.GradeScore }))
}
