package models

import "time"

// Team groups players, trainings and matches under one owner.
type Team struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	OwnerID  string   `json:"owner_id" gorm:"index;not null"`
	Name     string   `json:"name" gorm:"not null"`
	Slug     string   `json:"slug" gorm:"index"`
	Category Category `json:"category" gorm:"type:varchar(16);not null"`
	Field    string   `json:"field,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
	Deleted  bool     `json:"-" gorm:"not null;default:false"`

	Players   []Player   `json:"players,omitempty" gorm:"foreignKey:TeamID"`
	Opponents []Opponent `json:"opponents,omitempty" gorm:"foreignKey:TeamID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Opponent is a rival club a team plays matches against.
type Opponent struct {
	ID      string `json:"id" gorm:"primaryKey"`
	TeamID  string `json:"team_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"not null"`
	Field   string `json:"field,omitempty"`
	Deleted bool   `json:"-" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
