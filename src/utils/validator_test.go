package utils

import (
	"Backend-Tutoria-001/src/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructLesson(t *testing.T) {
	valid := models.Lesson{
		Title: "Algebra I",
		Price: 100,
		Grade: models.GradeFirst,
	}
	assert.NoError(t, ValidateStruct(&valid))

	missingTitle := models.Lesson{Price: 100, Grade: models.GradeFirst}
	err := ValidateStruct(&missingTitle)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Title")

	negativePrice := models.Lesson{Title: "Algebra I", Price: -5, Grade: models.GradeFirst}
	err = ValidateStruct(&negativePrice)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Price")
}

func TestValidateStructSubscription(t *testing.T) {
	sub := models.Subscription{
		Name:         "Full term",
		Price:        500,
		DurationDays: 90,
	}
	assert.NoError(t, ValidateStruct(&sub))

	sub.DurationDays = 0
	err := ValidateStruct(&sub)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DurationDays")
}
