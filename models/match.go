package models

import "time"

// Match belongs to exactly one team and one season. The season is attached
// at creation time from the resolved current season, never user-supplied.
type Match struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	TeamID     string    `json:"team_id" gorm:"index;not null"`
	SeasonID   string    `json:"season_id" gorm:"index;not null"`
	OpponentID string    `json:"opponent_id" gorm:"index;not null"`
	Date       time.Time `json:"date" gorm:"not null"`
	Location   string    `json:"location,omitempty"`

	Finalized    bool    `json:"finalized" gorm:"not null;default:false"`
	GoalsFor     *int    `json:"goals_for,omitempty"`
	GoalsAgainst *int    `json:"goals_against,omitempty"`
	Result       *string `json:"result,omitempty"`
	Won          bool    `json:"won" gorm:"not null;default:false"`
	Draw         bool    `json:"draw" gorm:"not null;default:false"`
	Deleted      bool    `json:"-" gorm:"not null;default:false"`

	Season      Season            `json:"season,omitempty" gorm:"foreignKey:SeasonID"`
	Opponent    Opponent          `json:"opponent,omitempty" gorm:"foreignKey:OpponentID"`
	PlayerStats []PlayerMatchStat `json:"player_stats,omitempty" gorm:"foreignKey:MatchID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PlayerMatchStat is one player's evaluation for one match, unique per
// (match, player). Rows are materialized zeroed for every active roster
// player the first time match stats are read.
type PlayerMatchStat struct {
	ID       string `json:"id" gorm:"primaryKey"`
	MatchID  string `json:"match_id" gorm:"not null;uniqueIndex:idx_match_player"`
	PlayerID string `json:"player_id" gorm:"not null;uniqueIndex:idx_match_player"`

	Goals            int  `json:"goals" gorm:"not null;default:0"`
	MinutesPlayed    int  `json:"minutes_played" gorm:"not null;default:0"`
	YellowCard       bool `json:"yellow_card" gorm:"not null;default:false"`
	DoubleYellowCard bool `json:"double_yellow_card" gorm:"not null;default:false"`
	RedCard          bool `json:"red_card" gorm:"not null;default:false"`
	GoalsConceded    int  `json:"goals_conceded" gorm:"not null;default:0"`
	OwnGoals         int  `json:"own_goals" gorm:"not null;default:0"`
	CalledUp         bool `json:"called_up" gorm:"not null;default:false"`
	Starter          bool `json:"starter" gorm:"not null;default:false"`

	Player Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
