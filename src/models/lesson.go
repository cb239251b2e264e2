package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExamQuestion is embedded inside a lesson. CorrectIndex points into Choices.
type ExamQuestion struct {
	Question     string   `bson:"question" json:"question"`
	Choices      []string `bson:"choices" json:"choices"`
	CorrectIndex int      `bson:"correctIndex" json:"correctIndex"`
}

// Lesson is a purchasable lesson. Media fields are opaque keys managed by
// the file-storage service, not by this backend.
type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Description string             `bson:"description" json:"description"`
	Grade       string             `bson:"grade" json:"grade" validate:"required"` // first | second | third | all

	CoverKey         string `bson:"coverKey,omitempty" json:"coverKey,omitempty"`
	VideoKey         string `bson:"videoKey,omitempty" json:"videoKey,omitempty"`
	PdfKey           string `bson:"pdfKey,omitempty" json:"pdfKey,omitempty"`
	HomeworkKey      string `bson:"homeworkKey,omitempty" json:"homeworkKey,omitempty"`
	SolutionKey      string `bson:"solutionKey,omitempty" json:"solutionKey,omitempty"`
	SolutionVideoKey string `bson:"solutionVideoKey,omitempty" json:"solutionVideoKey,omitempty"`

	ExamQuestions []ExamQuestion `bson:"examQuestions" json:"examQuestions"`
	IsActive      bool           `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}
