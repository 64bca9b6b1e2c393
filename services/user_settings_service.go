package services

import (
	"errors"
	"log"

	"team-ops-system/models"

	"gorm.io/gorm"
)

// UserSettingsService owns per-user preferences such as the roster size cap
// applied on player creation.
type UserSettingsService struct {
	DB *gorm.DB

	// DefaultMaxPlayersPerTeam seeds the settings row created on a user's
	// first access.
	DefaultMaxPlayersPerTeam int
}

func NewUserSettingsService(db *gorm.DB, defaultMaxPlayersPerTeam int) *UserSettingsService {
	return &UserSettingsService{DB: db, DefaultMaxPlayersPerTeam: defaultMaxPlayersPerTeam}
}

type UserSettingsRequest struct {
	MaxPlayersPerTeam int `json:"max_players_per_team"`
}

// GetSettings returns the user's settings, creating the default row when the
// user has none yet.
func (s *UserSettingsService) GetSettings(userID string) (models.UserSettings, error) {
	var settings models.UserSettings
	err := s.DB.First(&settings, "user_id = ?", userID).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserSettings{}, persistencef("get settings", err)
	}

	settings = models.UserSettings{
		UserID:            userID,
		MaxPlayersPerTeam: s.DefaultMaxPlayersPerTeam,
	}
	if err := s.DB.Create(&settings).Error; err != nil {
		return models.UserSettings{}, persistencef("create settings", err)
	}
	log.Printf("[SETTINGS] created default settings for user %s", userID)
	return settings, nil
}

// UpdateSettings changes the user's settings, creating the defaults first
// when needed.
func (s *UserSettingsService) UpdateSettings(userID string, req UserSettingsRequest) (models.UserSettings, error) {
	if req.MaxPlayersPerTeam < 1 {
		return models.UserSettings{}, validationf("max_players_per_team must be at least 1")
	}
	settings, err := s.GetSettings(userID)
	if err != nil {
		return models.UserSettings{}, err
	}
	settings.MaxPlayersPerTeam = req.MaxPlayersPerTeam
	if err := s.DB.Save(&settings).Error; err != nil {
		return models.UserSettings{}, persistencef("update settings", err)
	}
	return settings, nil
}
