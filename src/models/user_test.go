package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidGrade(t *testing.T) {
	assert.True(t, ValidGrade(GradeFirst))
	assert.True(t, ValidGrade(GradeSecond))
	assert.True(t, ValidGrade(GradeThird))
	assert.True(t, ValidGrade(GradeAll))

	assert.False(t, ValidGrade(""))
	assert.False(t, ValidGrade("fourth"))
	assert.False(t, ValidGrade("First"))
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{
		FullName: "Sara Ahmed",
		Password: "$2a$10$somebcrypthash",
		Type:     UserTypeStudent,
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "bcrypt")
	assert.NotContains(t, string(data), "password")
}

func TestUserVariantFieldsOmitted(t *testing.T) {
	teacher := User{
		FullName:    "Mahmoud",
		Type:        UserTypeTeacher,
		TeacherCode: "TCH-0001",
		Phone:       "01000000000",
	}

	data, err := json.Marshal(teacher)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "studentNumber")
	assert.NotContains(t, string(data), "supportCode")
	assert.Contains(t, string(data), "teacherCode")
}
