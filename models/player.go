package models

import (
	"strings"
	"time"
)

// Player belongs to a team. Full name and age are derived at read time,
// never stored.
type Player struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	TeamID        string       `json:"team_id" gorm:"index;not null"`
	Name          string       `json:"name" gorm:"not null"`
	SurnameFirst  string       `json:"surname_first" gorm:"not null"`
	SurnameSecond string       `json:"surname_second,omitempty"`
	Position      Position     `json:"position" gorm:"type:varchar(8);not null"`
	Number        int          `json:"number" gorm:"not null"`
	Status        PlayerStatus `json:"status" gorm:"type:varchar(16);not null"`
	Foot          Foot         `json:"foot" gorm:"type:varchar(8)"`
	BirthDate     time.Time    `json:"birth_date" gorm:"not null"`
	PhotoURL      string       `json:"photo_url,omitempty"`
	Deleted       bool         `json:"-" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FullName joins name and surnames, omitting an empty second surname.
func (p Player) FullName() string {
	parts := []string{p.Name, p.SurnameFirst}
	if p.SurnameSecond != "" {
		parts = append(parts, p.SurnameSecond)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// AgeAt returns the player's age in whole years at the given date.
func (p Player) AgeAt(now time.Time) int {
	if p.BirthDate.IsZero() {
		return 0
	}
	years := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
