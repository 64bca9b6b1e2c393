package services

import (
	"errors"

	"team-ops-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpponentService struct {
	DB *gorm.DB
}

func NewOpponentService(db *gorm.DB) *OpponentService {
	return &OpponentService{DB: db}
}

type OpponentRequest struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Field  string `json:"field"`
}

func (s *OpponentService) CreateOpponent(userID string, req OpponentRequest) (models.Opponent, error) {
	if req.Name == "" {
		return models.Opponent{}, validationf("opponent name is required")
	}
	if _, err := ownedTeam(s.DB, req.TeamID, userID); err != nil {
		return models.Opponent{}, err
	}
	opponent := models.Opponent{
		ID:     uuid.NewString(),
		TeamID: req.TeamID,
		Name:   req.Name,
		Field:  req.Field,
	}
	if err := s.DB.Create(&opponent).Error; err != nil {
		return models.Opponent{}, persistencef("create opponent", err)
	}
	return opponent, nil
}

func (s *OpponentService) ListOpponents(userID, teamID string) ([]models.Opponent, error) {
	if _, err := ownedTeam(s.DB, teamID, userID); err != nil {
		return nil, err
	}
	var opponents []models.Opponent
	if err := s.DB.Where("team_id = ? AND deleted = ?", teamID, false).
		Order("name").Find(&opponents).Error; err != nil {
		return nil, persistencef("list opponents", err)
	}
	return opponents, nil
}

// opponentOwnedBy loads a non-deleted opponent and checks it belongs to a
// team of the acting user.
func opponentOwnedBy(db *gorm.DB, opponentID, userID string) (models.Opponent, error) {
	var opponent models.Opponent
	err := db.Where("id = ? AND deleted = ?", opponentID, false).First(&opponent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Opponent{}, notFoundf("opponent %s", opponentID)
	}
	if err != nil {
		return models.Opponent{}, persistencef("get opponent", err)
	}
	if _, err := ownedTeam(db, opponent.TeamID, userID); err != nil {
		return models.Opponent{}, err
	}
	return opponent, nil
}
