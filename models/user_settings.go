package models

import "time"

// UserSettings carries per-user preferences. A row is created with defaults
// the first time a user's settings are read, so every user always has one.
type UserSettings struct {
	UserID            string `json:"user_id" gorm:"primaryKey"`
	MaxPlayersPerTeam int    `json:"max_players_per_team" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
