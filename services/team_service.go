package services

import (
	"errors"
	"log"

	"team-ops-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

type TeamRequest struct {
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Field    string          `json:"field"`
	PhotoURL string          `json:"photo_url"`
}

func (s *TeamService) CreateTeam(userID string, req TeamRequest) (models.Team, error) {
	if req.Name == "" {
		return models.Team{}, validationf("team name is required")
	}
	if !req.Category.Valid() {
		return models.Team{}, validationf("unknown team category %q", req.Category)
	}
	team := models.Team{
		ID:       uuid.NewString(),
		OwnerID:  userID,
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		Category: req.Category,
		Field:    req.Field,
		PhotoURL: req.PhotoURL,
	}
	if err := s.DB.Create(&team).Error; err != nil {
		return models.Team{}, persistencef("create team", err)
	}
	log.Printf("[TEAM] created team %s (%s) for user %s", team.Name, team.ID, userID)
	return team, nil
}

func (s *TeamService) GetTeams(userID string) ([]models.Team, error) {
	var teams []models.Team
	if err := s.DB.Where("owner_id = ? AND deleted = ?", userID, false).
		Order("name").Find(&teams).Error; err != nil {
		return nil, persistencef("list teams", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(userID, teamID string) (models.Team, error) {
	return ownedTeam(s.DB, teamID, userID)
}

func (s *TeamService) UpdateTeam(userID, teamID string, req TeamRequest) (models.Team, error) {
	team, err := ownedTeam(s.DB, teamID, userID)
	if err != nil {
		return models.Team{}, err
	}
	if req.Name == "" {
		return models.Team{}, validationf("team name is required")
	}
	if !req.Category.Valid() {
		return models.Team{}, validationf("unknown team category %q", req.Category)
	}
	team.Name = req.Name
	team.Slug = slug.Make(req.Name)
	team.Category = req.Category
	team.Field = req.Field
	team.PhotoURL = req.PhotoURL
	if err := s.DB.Save(&team).Error; err != nil {
		return models.Team{}, persistencef("update team", err)
	}
	return team, nil
}

// DeleteTeam soft-deletes; matches and trainings keep their rows.
func (s *TeamService) DeleteTeam(userID, teamID string) error {
	team, err := ownedTeam(s.DB, teamID, userID)
	if err != nil {
		return err
	}
	team.Deleted = true
	if err := s.DB.Save(&team).Error; err != nil {
		return persistencef("delete team", err)
	}
	log.Printf("[TEAM] soft-deleted team %s by user %s", teamID, userID)
	return nil
}

// ownedTeam loads a non-deleted team and checks the acting user owns it.
// Every team-scoped operation goes through this before touching team data.
func ownedTeam(db *gorm.DB, teamID, userID string) (models.Team, error) {
	var team models.Team
	err := db.Where("id = ? AND deleted = ?", teamID, false).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Team{}, notFoundf("team %s", teamID)
	}
	if err != nil {
		return models.Team{}, persistencef("get team", err)
	}
	if team.OwnerID != userID {
		return models.Team{}, ErrPermission
	}
	return team, nil
}
