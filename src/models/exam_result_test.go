package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuestions() []ExamQuestion {
	return []ExamQuestion{
		{Question: "2 + 2 = ?", Choices: []string{"3", "4", "5"}, CorrectIndex: 1},
		{Question: "Speed unit?", Choices: []string{"m/s", "kg", "N"}, CorrectIndex: 0},
		{Question: "Force unit?", Choices: []string{"m/s", "kg", "N"}, CorrectIndex: 2},
		{Question: "Mass unit?", Choices: []string{"m/s", "kg", "N"}, CorrectIndex: 1},
	}
}

func TestGradeAnswers(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		correct, score, passed := GradeAnswers(sampleQuestions(), []int{1, 0, 2, 1})
		assert.Equal(t, 4, correct)
		assert.Equal(t, 100.0, score)
		assert.True(t, passed)
	})

	t.Run("HalfCorrectPasses", func(t *testing.T) {
		correct, score, passed := GradeAnswers(sampleQuestions(), []int{1, 0, 0, 0})
		assert.Equal(t, 2, correct)
		assert.Equal(t, 50.0, score)
		assert.True(t, passed, "exactly the threshold should pass")
	})

	t.Run("BelowThresholdFails", func(t *testing.T) {
		correct, score, passed := GradeAnswers(sampleQuestions(), []int{1, 2, 0, 0})
		assert.Equal(t, 1, correct)
		assert.Equal(t, 25.0, score)
		assert.False(t, passed)
	})

	t.Run("MissingAnswersCountAsWrong", func(t *testing.T) {
		correct, score, passed := GradeAnswers(sampleQuestions(), []int{1})
		assert.Equal(t, 1, correct)
		assert.Equal(t, 25.0, score)
		assert.False(t, passed)
	})

	t.Run("OutOfRangeAnswersCountAsWrong", func(t *testing.T) {
		correct, _, _ := GradeAnswers(sampleQuestions(), []int{7, -1, 2, 1})
		assert.Equal(t, 2, correct)
	})

	t.Run("NoQuestionsGradesToZeroFail", func(t *testing.T) {
		correct, score, passed := GradeAnswers(nil, []int{0, 1})
		assert.Equal(t, 0, correct)
		assert.Equal(t, 0.0, score)
		assert.False(t, passed)
	})

	t.Run("ExtraAnswersIgnored", func(t *testing.T) {
		correct, _, _ := GradeAnswers(sampleQuestions(), []int{1, 0, 2, 1, 0, 0, 0})
		assert.Equal(t, 4, correct)
	})
}
