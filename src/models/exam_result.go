package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PassThreshold is the minimum percent score counted as a pass.
const PassThreshold = 50.0

// ExamResult is the graded outcome of a student taking a lesson's exam.
// Append-only: there is no update or delete endpoint for results.
type ExamResult struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	StudentName string             `bson:"studentName" json:"studentName"`
	LessonID    primitive.ObjectID `bson:"lessonId" json:"lessonId"`
	LessonTitle string             `bson:"lessonTitle" json:"lessonTitle"`

	Score        float64   `bson:"score" json:"score"` // percent 0-100
	CorrectCount int       `bson:"correctCount" json:"correctCount"`
	TotalCount   int       `bson:"totalCount" json:"totalCount"`
	Answers      []int     `bson:"answers" json:"answers"` // submitted choice index per question
	Passed       bool      `bson:"passed" json:"passed"`
	SubmittedAt  time.Time `bson:"submittedAt" json:"submittedAt"`
}

// GradeAnswers scores submitted choice indices against a lesson's questions.
// Missing or out-of-range answers count as incorrect; a lesson with no
// questions grades to zero and a fail.
func GradeAnswers(questions []ExamQuestion, answers []int) (correct int, score float64, passed bool) {
	total := len(questions)
	if total == 0 {
		return 0, 0, false
	}

	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] >= 0 && answers[i] < len(q.Choices) && answers[i] == q.CorrectIndex {
			correct++
		}
	}

	score = float64(correct) / float64(total) * 100
	return correct, score, score >= PassThreshold
}
