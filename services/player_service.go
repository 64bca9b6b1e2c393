package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"team-ops-system/models"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// PlayerService owns the roster and the on-the-fly season statistics. The
// roster size cap comes from the acting user's settings.
type PlayerService struct {
	DB       *gorm.DB
	Seasons  *SeasonService
	Settings *UserSettingsService

	clock    func() time.Time
	collator *collate.Collator
}

func NewPlayerService(db *gorm.DB, seasons *SeasonService, settings *UserSettingsService) *PlayerService {
	return &PlayerService{
		DB:       db,
		Seasons:  seasons,
		Settings: settings,
		clock:    time.Now,
		collator: collate.New(language.Spanish),
	}
}

type PlayerRequest struct {
	TeamID        string              `json:"team_id"`
	Name          string              `json:"name"`
	SurnameFirst  string              `json:"surname_first"`
	SurnameSecond string              `json:"surname_second"`
	Position      models.Position     `json:"position"`
	Number        int                 `json:"number"`
	Status        models.PlayerStatus `json:"status"`
	Foot          models.Foot         `json:"foot"`
	BirthDate     time.Time           `json:"birth_date"`
	PhotoURL      string              `json:"photo_url"`
}

// MatchesStats are a player's per-season appearance aggregates.
type MatchesStats struct {
	Convoked   int `json:"convoked"`
	Starter    int `json:"starter"`
	Substitute int `json:"substitute"`
	Played     int `json:"played"`
}

type GoalsStats struct {
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

type CardsStats struct {
	Yellow       int `json:"yellow"`
	Red          int `json:"red"`
	DoubleYellow int `json:"double_yellow"`
}

// TrainingStats are a player's attendance aggregates over the season's
// trainings.
type TrainingStats struct {
	Total              int     `json:"total"`
	Present            int     `json:"present"`
	Absent             int     `json:"absent"`
	Injured            int     `json:"injured"`
	Late               int     `json:"late"`
	UnjustifiedAbsence int     `json:"unjustified_absence"`
	JustifiedAbsence   int     `json:"justified_absence"`
	AttendanceRate     float64 `json:"attendance_rate"`
}

// PlayerSeasonStats is the nested aggregate consumed by the player detail
// read path. Pure: the same underlying rows always produce the same value,
// and zero rows produce zeroed aggregates.
type PlayerSeasonStats struct {
	SeasonID string        `json:"season_id"`
	Matches  MatchesStats  `json:"matches"`
	Goals    GoalsStats    `json:"goals"`
	Cards    CardsStats    `json:"cards"`
	Training TrainingStats `json:"training"`
}

// PlayerDetail is a player with derived fields and current-season stats.
type PlayerDetail struct {
	models.Player
	FullName string            `json:"full_name"`
	Age      int               `json:"age"`
	Stats    PlayerSeasonStats `json:"stats"`
}

// PlayerSummary is the lightweight roster listing entry.
type PlayerSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Foot     string `json:"foot"`
	Status   string `json:"status"`
	Age      int    `json:"age"`
}

// RosterSummary is a team's ordered, status-grouped roster.
type RosterSummary struct {
	TeamID       string           `json:"team_id"`
	TeamName     string           `json:"team_name"`
	TotalPlayers int              `json:"total_players"`
	Players      []PlayerSummary  `json:"players"`
	StatusCount  map[string]int64 `json:"status_count"`
}

func (s *PlayerService) CreatePlayer(userID string, req PlayerRequest) (models.Player, error) {
	if err := validatePlayerRequest(req); err != nil {
		return models.Player{}, err
	}
	team, err := ownedTeam(s.DB, req.TeamID, userID)
	if err != nil {
		return models.Player{}, err
	}

	settings, err := s.Settings.GetSettings(userID)
	if err != nil {
		return models.Player{}, err
	}
	var active int64
	if err := s.DB.Model(&models.Player{}).
		Where("team_id = ? AND deleted = ?", team.ID, false).
		Count(&active).Error; err != nil {
		return models.Player{}, persistencef("count players", err)
	}
	if active >= int64(settings.MaxPlayersPerTeam) {
		return models.Player{}, validationf("team %s already has the maximum of %d players", team.ID, settings.MaxPlayersPerTeam)
	}

	player := models.Player{
		ID:            uuid.NewString(),
		TeamID:        team.ID,
		Name:          req.Name,
		SurnameFirst:  req.SurnameFirst,
		SurnameSecond: req.SurnameSecond,
		Position:      req.Position,
		Number:        req.Number,
		Status:        req.Status,
		Foot:          req.Foot,
		BirthDate:     truncateToDay(req.BirthDate),
		PhotoURL:      req.PhotoURL,
	}
	if err := s.DB.Create(&player).Error; err != nil {
		return models.Player{}, persistencef("create player", err)
	}
	log.Printf("[PLAYER] created player %s (%s) in team %s", player.FullName(), player.ID, team.ID)
	return player, nil
}

func (s *PlayerService) UpdatePlayer(userID, playerID string, req PlayerRequest) (models.Player, error) {
	if err := validatePlayerRequest(req); err != nil {
		return models.Player{}, err
	}
	player, err := s.ownedPlayer(playerID, userID)
	if err != nil {
		return models.Player{}, err
	}
	if req.TeamID != player.TeamID {
		if _, err := ownedTeam(s.DB, req.TeamID, userID); err != nil {
			return models.Player{}, err
		}
		player.TeamID = req.TeamID
	}
	player.Name = req.Name
	player.SurnameFirst = req.SurnameFirst
	player.SurnameSecond = req.SurnameSecond
	player.Position = req.Position
	player.Number = req.Number
	player.Status = req.Status
	player.Foot = req.Foot
	player.BirthDate = truncateToDay(req.BirthDate)
	player.PhotoURL = req.PhotoURL
	if err := s.DB.Save(&player).Error; err != nil {
		return models.Player{}, persistencef("update player", err)
	}
	return player, nil
}

func (s *PlayerService) DeletePlayer(userID, playerID string) error {
	player, err := s.ownedPlayer(playerID, userID)
	if err != nil {
		return err
	}
	player.Deleted = true
	if err := s.DB.Save(&player).Error; err != nil {
		return persistencef("delete player", err)
	}
	log.Printf("[PLAYER] soft-deleted player %s by user %s", playerID, userID)
	return nil
}

// GetPlayer returns the player with derived full name and age, and stats
// for the current season.
func (s *PlayerService) GetPlayer(userID, playerID string) (PlayerDetail, error) {
	player, err := s.ownedPlayer(playerID, userID)
	if err != nil {
		return PlayerDetail{}, err
	}
	season, err := s.Seasons.ResolveCurrentSeason()
	if err != nil {
		return PlayerDetail{}, err
	}
	stats, err := s.ComputePlayerSeasonStats(userID, playerID, season.ID)
	if err != nil {
		return PlayerDetail{}, err
	}
	return PlayerDetail{
		Player:   player,
		FullName: player.FullName(),
		Age:      player.AgeAt(s.clock()),
		Stats:    stats,
	}, nil
}

// ComputePlayerSeasonStats aggregates the player's match stat rows whose
// match belongs to the season and is not soft-deleted, plus the player's
// attendance rows for trainings dated within the season's range.
func (s *PlayerService) ComputePlayerSeasonStats(userID, playerID, seasonID string) (PlayerSeasonStats, error) {
	if _, err := s.ownedPlayer(playerID, userID); err != nil {
		return PlayerSeasonStats{}, err
	}
	season, err := s.Seasons.GetSeason(seasonID)
	if err != nil {
		return PlayerSeasonStats{}, err
	}

	var rows []models.PlayerMatchStat
	if err := s.DB.Model(&models.PlayerMatchStat{}).
		Select("player_match_stats.*").
		Joins("JOIN matches ON matches.id = player_match_stats.match_id").
		Where("player_match_stats.player_id = ? AND matches.season_id = ? AND matches.deleted = ?",
			playerID, seasonID, false).
		Find(&rows).Error; err != nil {
		return PlayerSeasonStats{}, persistencef("load season stats", err)
	}

	stats := PlayerSeasonStats{SeasonID: seasonID}
	for _, row := range rows {
		if row.CalledUp {
			stats.Matches.Convoked++
		}
		if row.Starter {
			stats.Matches.Starter++
		}
		if row.CalledUp && !row.Starter {
			stats.Matches.Substitute++
		}
		if row.MinutesPlayed > 0 {
			stats.Matches.Played++
		}
		stats.Goals.Total += row.Goals
		if row.YellowCard {
			stats.Cards.Yellow++
		}
		if row.RedCard {
			stats.Cards.Red++
		}
		if row.DoubleYellowCard {
			stats.Cards.DoubleYellow++
		}
	}
	if stats.Matches.Played > 0 {
		stats.Goals.Average = float64(stats.Goals.Total) / float64(stats.Matches.Played)
	}

	training, err := s.computeTrainingStats(playerID, season)
	if err != nil {
		return PlayerSeasonStats{}, err
	}
	stats.Training = training
	return stats, nil
}

// computeTrainingStats scopes attendance to the season by training date.
func (s *PlayerService) computeTrainingStats(playerID string, season models.Season) (TrainingStats, error) {
	// EndDate is a date at midnight; include the whole final day.
	seasonEnd := season.EndDate.AddDate(0, 0, 1)

	var rows []models.TrainingAttendance
	if err := s.DB.Model(&models.TrainingAttendance{}).
		Select("training_attendances.*").
		Joins("JOIN trainings ON trainings.id = training_attendances.training_id").
		Where("training_attendances.player_id = ? AND training_attendances.deleted = ?", playerID, false).
		Where("trainings.deleted = ? AND trainings.date >= ? AND trainings.date < ?",
			false, season.StartDate, seasonEnd).
		Find(&rows).Error; err != nil {
		return TrainingStats{}, persistencef("load attendance stats", err)
	}

	var stats TrainingStats
	stats.Total = len(rows)
	for _, row := range rows {
		switch row.Status {
		case models.AttendancePresent:
			stats.Present++
		case models.AttendanceAbsent:
			stats.Absent++
		case models.AttendanceInjured:
			stats.Injured++
		case models.AttendanceLate:
			stats.Late++
		case models.AttendanceUnjustifiedAbsence:
			stats.UnjustifiedAbsence++
		case models.AttendanceJustifiedAbsence:
			stats.JustifiedAbsence++
		}
	}
	if stats.Total > 0 {
		stats.AttendanceRate = float64(stats.Present) / float64(stats.Total)
	}
	return stats, nil
}

// GetRosterSummary returns the team's non-deleted players ordered by
// position display order, then collated full name, with status group counts.
func (s *PlayerService) GetRosterSummary(userID, teamID string) (RosterSummary, error) {
	team, err := ownedTeam(s.DB, teamID, userID)
	if err != nil {
		return RosterSummary{}, err
	}
	var players []models.Player
	if err := s.DB.Where("team_id = ? AND deleted = ?", teamID, false).
		Find(&players).Error; err != nil {
		return RosterSummary{}, persistencef("list players", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		oi, oj := players[i].Position.Order(), players[j].Position.Order()
		if oi != oj {
			return oi < oj
		}
		return s.collator.CompareString(players[i].FullName(), players[j].FullName()) < 0
	})

	now := s.clock()
	summaries := make([]PlayerSummary, 0, len(players))
	statusCount := make(map[string]int64)
	for _, player := range players {
		summaries = append(summaries, PlayerSummary{
			ID:       player.ID,
			FullName: player.FullName(),
			PhotoURL: player.PhotoURL,
			Number:   player.Number,
			Position: player.Position.Label(),
			Foot:     player.Foot.Label(),
			Status:   string(player.Status),
			Age:      player.AgeAt(now),
		})
		statusCount[player.Status.Label()]++
	}

	return RosterSummary{
		TeamID:       teamID,
		TeamName:     team.Name,
		TotalPlayers: len(players),
		Players:      summaries,
		StatusCount:  statusCount,
	}, nil
}

func validatePlayerRequest(req PlayerRequest) error {
	if req.Name == "" || req.SurnameFirst == "" {
		return validationf("player name and first surname are required")
	}
	if !req.Position.Valid() {
		return validationf("unknown position %q", req.Position)
	}
	if !req.Status.Valid() {
		return validationf("unknown player status %q", req.Status)
	}
	if req.Foot != "" && !req.Foot.Valid() {
		return validationf("unknown foot %q", req.Foot)
	}
	if req.BirthDate.IsZero() {
		return validationf("player birth date is required")
	}
	return nil
}

func (s *PlayerService) ownedPlayer(playerID, userID string) (models.Player, error) {
	var player models.Player
	err := s.DB.Where("id = ? AND deleted = ?", playerID, false).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Player{}, notFoundf("player %s", playerID)
	}
	if err != nil {
		return models.Player{}, persistencef("get player", err)
	}
	if _, err := ownedTeam(s.DB, player.TeamID, userID); err != nil {
		return models.Player{}, err
	}
	return player, nil
}
