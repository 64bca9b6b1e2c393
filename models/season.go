package models

import "time"

// Season is a non-overlapping date interval that scopes matches and
// statistics to a competitive year. Seasons are created lazily the first
// time a date falls outside every existing season, named "<startYear>/<startYear+1>"
// on the September 1 academic boundary.
type Season struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	StartDate time.Time `json:"start_date" gorm:"not null;index"`
	EndDate   time.Time `json:"end_date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Overlaps reports whether the two seasons' [StartDate, EndDate] ranges
// intersect, bounds inclusive.
func (s Season) Overlaps(other Season) bool {
	return !s.StartDate.After(other.EndDate) && !s.EndDate.Before(other.StartDate)
}

// Contains reports whether the date falls inside the season, bounds inclusive.
func (s Season) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}
