package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User discriminator values
const (
	UserTypeStudent = "student"
	UserTypeTeacher = "teacher"
	UserTypeSupport = "support"
)

// Grade levels; "all" is used by content that targets every grade
const (
	GradeFirst  = "first"
	GradeSecond = "second"
	GradeThird  = "third"
	GradeAll    = "all"
)

// User is the single identity document for students, teachers and support
// staff. Type selects which extension fields apply; the others stay zero and
// are omitted from both the database and responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Password     string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never returned
	Type         string             `bson:"type" json:"type"`            // student | teacher | support
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	LastActivity time.Time          `bson:"lastActivity" json:"lastActivity"`

	// student fields
	StudentNumber string   `bson:"studentNumber,omitempty" json:"studentNumber,omitempty"`
	ParentNumber  string   `bson:"parentNumber,omitempty" json:"parentNumber,omitempty"`
	GradeLevel    string   `bson:"gradeLevel,omitempty" json:"gradeLevel,omitempty"` // first | second | third | all
	WalletBalance float64  `bson:"walletBalance" json:"walletBalance"`
	RewardPoints  int      `bson:"rewardPoints" json:"rewardPoints"`
	Ban           *BanInfo `bson:"ban,omitempty" json:"ban,omitempty"`

	// teacher fields
	TeacherCode string `bson:"teacherCode,omitempty" json:"teacherCode,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`

	// support fields
	SupportCode string     `bson:"supportCode,omitempty" json:"supportCode,omitempty"`
	IsOnline    bool       `bson:"isOnline,omitempty" json:"isOnline,omitempty"`
	LastLogout  *time.Time `bson:"lastLogout,omitempty" json:"lastLogout,omitempty"`
}

// BanInfo records who banned a student and why. BannedByType tells which
// user type BannedBy resolves to (teacher or support).
type BanInfo struct {
	IsBanned     bool               `bson:"isBanned" json:"isBanned"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	BannedAt     *time.Time         `bson:"bannedAt,omitempty" json:"bannedAt,omitempty"`
	BannedBy     primitive.ObjectID `bson:"bannedBy,omitempty" json:"bannedBy,omitempty"`
	BannedByType string             `bson:"bannedByType,omitempty" json:"bannedByType,omitempty"` // teacher | support
}

// ValidGrade reports whether grade is one of the accepted grade levels.
func ValidGrade(grade string) bool {
	switch grade {
	case GradeFirst, GradeSecond, GradeThird, GradeAll:
		return true
	}
	return false
}
