package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"team-ops-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchService owns the match lifecycle and the lazy materialization of
// per-player stat rows.
type MatchService struct {
	DB      *gorm.DB
	Seasons *SeasonService
}

func NewMatchService(db *gorm.DB, seasons *SeasonService) *MatchService {
	return &MatchService{DB: db, Seasons: seasons}
}

type MatchRequest struct {
	TeamID     string    `json:"team_id"`
	OpponentID string    `json:"opponent_id"`
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
}

type MatchUpdateRequest struct {
	OpponentID   string    `json:"opponent_id"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Finalized    bool      `json:"finalized"`
	GoalsFor     *int      `json:"goals_for"`
	GoalsAgainst *int      `json:"goals_against"`
}

type PlayerMatchStatRequest struct {
	Goals            int  `json:"goals"`
	MinutesPlayed    int  `json:"minutes_played"`
	YellowCard       bool `json:"yellow_card"`
	DoubleYellowCard bool `json:"double_yellow_card"`
	RedCard          bool `json:"red_card"`
	GoalsConceded    int  `json:"goals_conceded"`
	OwnGoals         int  `json:"own_goals"`
	CalledUp         bool `json:"called_up"`
	Starter          bool `json:"starter"`
}

// CreateMatch persists a match with the currently resolved season attached.
// A season resolution failure aborts the creation.
func (s *MatchService) CreateMatch(userID string, req MatchRequest) (models.Match, error) {
	if req.Date.IsZero() {
		return models.Match{}, validationf("match date is required")
	}
	team, err := ownedTeam(s.DB, req.TeamID, userID)
	if err != nil {
		return models.Match{}, err
	}
	opponent, err := opponentOwnedBy(s.DB, req.OpponentID, userID)
	if err != nil {
		return models.Match{}, err
	}
	season, err := s.Seasons.ResolveCurrentSeason()
	if err != nil {
		return models.Match{}, err
	}

	match := models.Match{
		ID:         uuid.NewString(),
		TeamID:     team.ID,
		SeasonID:   season.ID,
		OpponentID: opponent.ID,
		Date:       req.Date.UTC(),
		Location:   req.Location,
	}
	if err := s.DB.Create(&match).Error; err != nil {
		return models.Match{}, persistencef("create match", err)
	}
	log.Printf("[MATCH] created match %s for team %s in season %s", match.ID, team.ID, season.Name)
	match.Season = season
	match.Opponent = opponent
	return match, nil
}

// ListTeamMatches returns the team's non-deleted matches of the current
// season, newest first.
func (s *MatchService) ListTeamMatches(userID, teamID string) ([]models.Match, error) {
	if _, err := ownedTeam(s.DB, teamID, userID); err != nil {
		return nil, err
	}
	season, err := s.Seasons.ResolveCurrentSeason()
	if err != nil {
		return nil, err
	}
	var matches []models.Match
	if err := s.DB.Preload("Opponent").
		Where("team_id = ? AND season_id = ? AND deleted = ?", teamID, season.ID, false).
		Order("date DESC").Find(&matches).Error; err != nil {
		return nil, persistencef("list matches", err)
	}
	return matches, nil
}

// ListOpponentMatches returns every non-deleted match against the opponent,
// across seasons.
func (s *MatchService) ListOpponentMatches(userID, opponentID string) ([]models.Match, error) {
	if _, err := opponentOwnedBy(s.DB, opponentID, userID); err != nil {
		return nil, err
	}
	var matches []models.Match
	if err := s.DB.Preload("Opponent").Preload("Season").
		Where("opponent_id = ? AND deleted = ?", opponentID, false).
		Order("date DESC").Find(&matches).Error; err != nil {
		return nil, persistencef("list matches", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(userID, matchID string) (models.Match, error) {
	match, err := s.ownedMatch(matchID, userID)
	if err != nil {
		return models.Match{}, err
	}
	if err := s.DB.Preload("Opponent").Preload("Season").
		First(&match, "id = ?", match.ID).Error; err != nil {
		return models.Match{}, persistencef("get match", err)
	}
	return match, nil
}

// UpdateMatch changes match fields. Finalizing derives result, won and draw
// from the score; definalizing clears them.
func (s *MatchService) UpdateMatch(userID, matchID string, req MatchUpdateRequest) (models.Match, error) {
	match, err := s.ownedMatch(matchID, userID)
	if err != nil {
		return models.Match{}, err
	}
	if req.OpponentID != "" && req.OpponentID != match.OpponentID {
		opponent, err := opponentOwnedBy(s.DB, req.OpponentID, userID)
		if err != nil {
			return models.Match{}, err
		}
		match.OpponentID = opponent.ID
	}
	if !req.Date.IsZero() {
		match.Date = req.Date.UTC()
	}
	match.Location = req.Location
	match.Finalized = req.Finalized

	if req.Finalized {
		if req.GoalsFor == nil || req.GoalsAgainst == nil {
			return models.Match{}, validationf("a finalized match requires goals_for and goals_against")
		}
		goalsFor, goalsAgainst := *req.GoalsFor, *req.GoalsAgainst
		if goalsFor < 0 || goalsAgainst < 0 {
			return models.Match{}, validationf("goals cannot be negative")
		}
		result := fmt.Sprintf("%d-%d", goalsFor, goalsAgainst)
		match.GoalsFor = &goalsFor
		match.GoalsAgainst = &goalsAgainst
		match.Result = &result
		match.Won = goalsFor > goalsAgainst
		match.Draw = goalsFor == goalsAgainst
	} else {
		match.GoalsFor = nil
		match.GoalsAgainst = nil
		match.Result = nil
		match.Won = false
		match.Draw = false
	}

	// Save writes the full row so cleared pointers persist as NULL.
	if err := s.DB.Save(&match).Error; err != nil {
		return models.Match{}, persistencef("update match", err)
	}
	return s.GetMatch(userID, matchID)
}

func (s *MatchService) DeleteMatch(userID, matchID string) error {
	match, err := s.ownedMatch(matchID, userID)
	if err != nil {
		return err
	}
	match.Deleted = true
	if err := s.DB.Save(&match).Error; err != nil {
		return persistencef("delete match", err)
	}
	log.Printf("[MATCH] soft-deleted match %s by user %s", matchID, userID)
	return nil
}

// EnsureStatsMaterialized creates a zeroed stat row for every non-deleted
// roster player that has none for the match. Idempotent; the composite
// unique index on (match_id, player_id) backstops concurrent callers.
func (s *MatchService) EnsureStatsMaterialized(userID, matchID string) error {
	match, err := s.ownedMatch(matchID, userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var players []models.Player
		if err := tx.Where("team_id = ? AND deleted = ?", match.TeamID, false).
			Find(&players).Error; err != nil {
			return persistencef("load team players", err)
		}

		var existing []models.PlayerMatchStat
		if err := tx.Where("match_id = ?", matchID).Find(&existing).Error; err != nil {
			return persistencef("load match stats", err)
		}
		seen := make(map[string]bool, len(existing))
		for _, stat := range existing {
			seen[stat.PlayerID] = true
		}

		var missing []models.PlayerMatchStat
		for _, player := range players {
			if !seen[player.ID] {
				missing = append(missing, models.PlayerMatchStat{
					ID:       uuid.NewString(),
					MatchID:  matchID,
					PlayerID: player.ID,
				})
			}
		}
		if len(missing) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&missing).Error; err != nil {
			return persistencef("materialize match stats", err)
		}
		log.Printf("[MATCH] materialized %d stat rows for match %s", len(missing), matchID)
		return nil
	})
}

// GetMatchStats is the pure read half of the two-phase stat read: it returns
// the stat rows that exist, players preloaded, without creating anything.
func (s *MatchService) GetMatchStats(userID, matchID string) ([]models.PlayerMatchStat, error) {
	if _, err := s.ownedMatch(matchID, userID); err != nil {
		return nil, err
	}
	var stats []models.PlayerMatchStat
	if err := s.DB.Preload("Player").
		Where("match_id = ?", matchID).
		Find(&stats).Error; err != nil {
		return nil, persistencef("list match stats", err)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Player.Position.Order() < stats[j].Player.Position.Order()
	})
	return stats, nil
}

// UpdatePlayerMatchStat sets one player's evaluation for a match.
func (s *MatchService) UpdatePlayerMatchStat(userID, statID string, req PlayerMatchStatRequest) (models.PlayerMatchStat, error) {
	if req.MinutesPlayed < 0 || req.MinutesPlayed > 120 {
		return models.PlayerMatchStat{}, validationf("minutes_played must be between 0 and 120")
	}
	if req.Goals < 0 || req.GoalsConceded < 0 || req.OwnGoals < 0 {
		return models.PlayerMatchStat{}, validationf("goal counts cannot be negative")
	}

	var stat models.PlayerMatchStat
	err := s.DB.First(&stat, "id = ?", statID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlayerMatchStat{}, notFoundf("match stat %s", statID)
	}
	if err != nil {
		return models.PlayerMatchStat{}, persistencef("get match stat", err)
	}
	if _, err := s.ownedMatch(stat.MatchID, userID); err != nil {
		return models.PlayerMatchStat{}, err
	}

	stat.Goals = req.Goals
	stat.MinutesPlayed = req.MinutesPlayed
	stat.YellowCard = req.YellowCard
	stat.DoubleYellowCard = req.DoubleYellowCard
	stat.RedCard = req.RedCard
	stat.GoalsConceded = req.GoalsConceded
	stat.OwnGoals = req.OwnGoals
	stat.CalledUp = req.CalledUp
	stat.Starter = req.Starter
	if err := s.DB.Save(&stat).Error; err != nil {
		return models.PlayerMatchStat{}, persistencef("save match stat", err)
	}
	return stat, nil
}

func (s *MatchService) ownedMatch(matchID, userID string) (models.Match, error) {
	var match models.Match
	err := s.DB.Where("id = ? AND deleted = ?", matchID, false).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Match{}, notFoundf("match %s", matchID)
	}
	if err != nil {
		return models.Match{}, persistencef("get match", err)
	}
	if _, err := ownedTeam(s.DB, match.TeamID, userID); err != nil {
		return models.Match{}, err
	}
	return match, nil
}
