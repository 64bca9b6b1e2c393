package services

import (
	"errors"

	"team-ops-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseService struct {
	DB *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{DB: db}
}

type ExerciseRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	TacticalObjectives  string `json:"tactical_objectives"`
	TechnicalObjectives string `json:"technical_objectives"`
	PhysicalObjectives  string `json:"physical_objectives"`
	Materials           string `json:"materials"`
	Category            string `json:"category"`
}

func (s *ExerciseService) CreateExercise(userID string, req ExerciseRequest) (models.Exercise, error) {
	if req.Title == "" {
		return models.Exercise{}, validationf("exercise title is required")
	}
	exercise := models.Exercise{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		TacticalObjectives:  req.TacticalObjectives,
		TechnicalObjectives: req.TechnicalObjectives,
		PhysicalObjectives:  req.PhysicalObjectives,
		Materials:           req.Materials,
		Category:            req.Category,
	}
	if err := s.DB.Create(&exercise).Error; err != nil {
		return models.Exercise{}, persistencef("create exercise", err)
	}
	return exercise, nil
}

func (s *ExerciseService) ListExercises(userID string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.DB.Where("user_id = ? AND deleted = ?", userID, false).
		Order("title").Find(&exercises).Error; err != nil {
		return nil, persistencef("list exercises", err)
	}
	return exercises, nil
}

func (s *ExerciseService) DeleteExercise(userID, exerciseID string) error {
	var exercise models.Exercise
	err := s.DB.Where("id = ? AND deleted = ?", exerciseID, false).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("exercise %s", exerciseID)
	}
	if err != nil {
		return persistencef("get exercise", err)
	}
	if exercise.UserID != userID {
		return ErrPermission
	}
	exercise.Deleted = true
	if err := s.DB.Save(&exercise).Error; err != nil {
		return persistencef("delete exercise", err)
	}
	return nil
}

// exercisesOwnedBy loads the given exercises and rejects the batch if any is
// missing, deleted, or owned by someone else.
func exercisesOwnedBy(db *gorm.DB, exerciseIDs []string, userID string) ([]models.Exercise, error) {
	if len(exerciseIDs) == 0 {
		return nil, nil
	}
	var exercises []models.Exercise
	if err := db.Where("id IN ? AND deleted = ?", exerciseIDs, false).
		Find(&exercises).Error; err != nil {
		return nil, persistencef("load exercises", err)
	}
	if len(exercises) != len(exerciseIDs) {
		return nil, notFoundf("one or more exercises")
	}
	for _, e := range exercises {
		if e.UserID != userID {
			return nil, ErrPermission
		}
	}
	return exercises, nil
}
