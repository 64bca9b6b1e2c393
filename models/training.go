package models

import "time"

// Training is one session of a team's training history. SessionNumber is
// the 1-based rank of the session date among the team's non-deleted
// trainings, fixed at creation time and never rewritten.
type Training struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	TeamID        string    `json:"team_id" gorm:"index;not null"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	Date          time.Time `json:"date" gorm:"not null"`
	Location      string    `json:"location,omitempty"`
	TrainingType  string    `json:"training_type,omitempty"`
	SessionNumber int       `json:"session_number" gorm:"not null"`
	Observations  string    `json:"observations,omitempty" gorm:"type:text"`
	Deleted       bool      `json:"-" gorm:"not null;default:false"`

	Exercises  []Exercise           `json:"exercises,omitempty" gorm:"many2many:training_exercises"`
	Attendance []TrainingAttendance `json:"attendance,omitempty" gorm:"foreignKey:TrainingID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TrainingAttendance records one player's status for one training. The
// whole roster is seeded ABSENT when the training is created and rows are
// upserted individually afterwards; the service keeps one live row per
// (training, player).
type TrainingAttendance struct {
	ID         string           `json:"id" gorm:"primaryKey"`
	TrainingID string           `json:"training_id" gorm:"not null;index"`
	PlayerID   string           `json:"player_id" gorm:"not null;index"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(32);not null"`
	Notes      string           `json:"notes,omitempty"`
	Deleted    bool             `json:"-" gorm:"not null;default:false"`

	Player Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Exercise is a reusable drill owned by a user and attached to trainings.
type Exercise struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"index;not null"`
	Title               string    `json:"title" gorm:"not null"`
	Description         string    `json:"description,omitempty" gorm:"type:text"`
	TacticalObjectives  string    `json:"tactical_objectives,omitempty"`
	TechnicalObjectives string    `json:"technical_objectives,omitempty"`
	PhysicalObjectives  string    `json:"physical_objectives,omitempty"`
	Materials           string    `json:"materials,omitempty"`
	Category            string    `json:"category,omitempty"`
	Deleted             bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
