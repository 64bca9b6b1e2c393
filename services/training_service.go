package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"team-ops-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingService owns the training lifecycle: session numbering, the
// initial attendance list, and per-player attendance upserts.
type TrainingService struct {
	DB *gorm.DB
}

func NewTrainingService(db *gorm.DB) *TrainingService {
	return &TrainingService{DB: db}
}

type TrainingRequest struct {
	TeamID       string    `json:"team_id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	TrainingType string    `json:"training_type"`
	Observations string    `json:"observations"`
	ExerciseIDs  []string  `json:"exercise_ids"`
}

type AttendanceRequest struct {
	Status models.AttendanceStatus `json:"status"`
	Notes  string                  `json:"notes"`
}

// CreateTraining persists a training with its computed session number and
// seeds the attendance list for the whole active roster, all in one
// transaction so a failed bootstrap aborts the creation.
func (s *TrainingService) CreateTraining(userID string, req TrainingRequest) (models.Training, error) {
	if req.Title == "" {
		return models.Training{}, validationf("training title is required")
	}
	if req.Date.IsZero() {
		return models.Training{}, validationf("training date is required")
	}
	team, err := ownedTeam(s.DB, req.TeamID, userID)
	if err != nil {
		return models.Training{}, err
	}
	exercises, err := exercisesOwnedBy(s.DB, req.ExerciseIDs, userID)
	if err != nil {
		return models.Training{}, err
	}

	training := models.Training{
		ID:           uuid.NewString(),
		TeamID:       team.ID,
		UserID:       userID,
		Title:        req.Title,
		Date:         req.Date.UTC(),
		Location:     req.Location,
		TrainingType: req.TrainingType,
		Observations: req.Observations,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := nextSessionNumber(tx, team.ID, training.Date)
		if err != nil {
			return err
		}
		training.SessionNumber = number

		if err := tx.Create(&training).Error; err != nil {
			return persistencef("create training", err)
		}
		if len(exercises) > 0 {
			if err := tx.Model(&training).Association("Exercises").Append(&exercises); err != nil {
				return persistencef("attach exercises", err)
			}
		}
		return bootstrapAttendance(tx, training.ID, team.ID)
	})
	if err != nil {
		return models.Training{}, err
	}

	log.Printf("[TRAINING] created training %s (session %d) for team %s",
		training.ID, training.SessionNumber, team.ID)
	training.Exercises = exercises
	return training, nil
}

// nextSessionNumber ranks the proposed date within the team's non-deleted
// training history: 1 when the team has no trainings, otherwise one more
// than the count of trainings dated on or before the proposed date. Equal
// dates tie-break by insertion order and existing numbers are never
// rewritten, so inserting an earlier-dated training later does not renumber
// anything.
func nextSessionNumber(tx *gorm.DB, teamID string, date time.Time) (int, error) {
	var existing []models.Training
	if err := tx.Where("team_id = ? AND deleted = ?", teamID, false).
		Find(&existing).Error; err != nil {
		return 0, persistencef("load team trainings", err)
	}
	if len(existing) == 0 {
		return 1, nil
	}
	count := 0
	for _, t := range existing {
		if !t.Date.After(date) {
			count++
		}
	}
	return count + 1, nil
}

// bootstrapAttendance seeds one ABSENT attendance row per non-deleted team
// player. Invoked exactly once per training creation; it does not guard
// against a second invocation itself.
func bootstrapAttendance(tx *gorm.DB, trainingID, teamID string) error {
	var players []models.Player
	if err := tx.Where("team_id = ? AND deleted = ?", teamID, false).
		Find(&players).Error; err != nil {
		return persistencef("load team players", err)
	}
	if len(players) == 0 {
		return nil
	}
	attendance := make([]models.TrainingAttendance, 0, len(players))
	for _, player := range players {
		attendance = append(attendance, models.TrainingAttendance{
			ID:         uuid.NewString(),
			TrainingID: trainingID,
			PlayerID:   player.ID,
			Status:     models.AttendanceAbsent,
		})
	}
	if err := tx.Create(&attendance).Error; err != nil {
		return persistencef("create attendance list", err)
	}
	log.Printf("[TRAINING] attendance list seeded for training %s with %d players",
		trainingID, len(players))
	return nil
}

// UpsertAttendance sets a player's status and notes for a training, creating
// the row if the bootstrap missed the player (e.g. added to the roster
// after the training was created).
func (s *TrainingService) UpsertAttendance(userID, trainingID, playerID string, req AttendanceRequest) (models.TrainingAttendance, error) {
	if !req.Status.Valid() {
		return models.TrainingAttendance{}, validationf("unknown attendance status %q", req.Status)
	}
	training, err := s.ownedTraining(trainingID, userID)
	if err != nil {
		return models.TrainingAttendance{}, err
	}

	var player models.Player
	err = s.DB.Where("id = ? AND deleted = ?", playerID, false).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TrainingAttendance{}, notFoundf("player %s", playerID)
	}
	if err != nil {
		return models.TrainingAttendance{}, persistencef("get player", err)
	}
	if player.TeamID != training.TeamID {
		return models.TrainingAttendance{}, validationf("player %s does not belong to the training's team", playerID)
	}

	var attendance models.TrainingAttendance
	created := false
	err = s.DB.Where("training_id = ? AND player_id = ? AND deleted = ?", trainingID, playerID, false).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created = true
		attendance = models.TrainingAttendance{
			ID:         uuid.NewString(),
			TrainingID: trainingID,
			PlayerID:   playerID,
		}
	} else if err != nil {
		return models.TrainingAttendance{}, persistencef("get attendance", err)
	}

	attendance.Status = req.Status
	attendance.Notes = req.Notes
	if created {
		err = s.DB.Create(&attendance).Error
	} else {
		err = s.DB.Save(&attendance).Error
	}
	if err != nil {
		return models.TrainingAttendance{}, persistencef("save attendance", err)
	}
	return attendance, nil
}

// GetTrainingAttendance returns the non-deleted attendance rows of a
// training with players preloaded, ordered by position then shirt number.
func (s *TrainingService) GetTrainingAttendance(userID, trainingID string) ([]models.TrainingAttendance, error) {
	if _, err := s.ownedTraining(trainingID, userID); err != nil {
		return nil, err
	}
	var rows []models.TrainingAttendance
	if err := s.DB.Preload("Player").
		Where("training_id = ? AND deleted = ?", trainingID, false).
		Find(&rows).Error; err != nil {
		return nil, persistencef("list attendance", err)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return attendanceLess(rows[i], rows[j])
	})
	return rows, nil
}

func attendanceLess(a, b models.TrainingAttendance) bool {
	ao, bo := a.Player.Position.Order(), b.Player.Position.Order()
	if ao != bo {
		return ao < bo
	}
	return a.Player.Number < b.Player.Number
}

// ListTeamTrainings returns the team's non-deleted trainings, newest first.
func (s *TrainingService) ListTeamTrainings(userID, teamID string) ([]models.Training, error) {
	if _, err := ownedTeam(s.DB, teamID, userID); err != nil {
		return nil, err
	}
	var trainings []models.Training
	if err := s.DB.Preload("Exercises").
		Where("team_id = ? AND deleted = ?", teamID, false).
		Order("date DESC").Find(&trainings).Error; err != nil {
		return nil, persistencef("list trainings", err)
	}
	return trainings, nil
}

// ListUserTrainings returns every non-deleted training owned by the user.
func (s *TrainingService) ListUserTrainings(userID string) ([]models.Training, error) {
	var trainings []models.Training
	if err := s.DB.Preload("Exercises").
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("date DESC").Find(&trainings).Error; err != nil {
		return nil, persistencef("list trainings", err)
	}
	return trainings, nil
}

func (s *TrainingService) GetTraining(userID, trainingID string) (models.Training, error) {
	training, err := s.ownedTraining(trainingID, userID)
	if err != nil {
		return models.Training{}, err
	}
	if err := s.DB.Preload("Exercises").First(&training, "id = ?", training.ID).Error; err != nil {
		return models.Training{}, persistencef("get training", err)
	}
	return training, nil
}

// UpdateTraining changes descriptive fields and the exercise list. The
// session number is immutable once set; a date change does not renumber.
func (s *TrainingService) UpdateTraining(userID, trainingID string, req TrainingRequest) (models.Training, error) {
	training, err := s.ownedTraining(trainingID, userID)
	if err != nil {
		return models.Training{}, err
	}
	if req.Title == "" {
		return models.Training{}, validationf("training title is required")
	}
	training.Title = req.Title
	if !req.Date.IsZero() {
		training.Date = req.Date.UTC()
	}
	training.Location = req.Location
	training.TrainingType = req.TrainingType
	training.Observations = req.Observations

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&training).Error; err != nil {
			return persistencef("update training", err)
		}
		if req.ExerciseIDs != nil {
			exercises, err := exercisesOwnedBy(tx, req.ExerciseIDs, userID)
			if err != nil {
				return err
			}
			if err := tx.Model(&training).Association("Exercises").Replace(&exercises); err != nil {
				return persistencef("replace exercises", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Training{}, err
	}
	return s.GetTraining(userID, trainingID)
}

func (s *TrainingService) DeleteTraining(userID, trainingID string) error {
	training, err := s.ownedTraining(trainingID, userID)
	if err != nil {
		return err
	}
	training.Deleted = true
	if err := s.DB.Save(&training).Error; err != nil {
		return persistencef("delete training", err)
	}
	log.Printf("[TRAINING] soft-deleted training %s by user %s", trainingID, userID)
	return nil
}

func (s *TrainingService) ownedTraining(trainingID, userID string) (models.Training, error) {
	var training models.Training
	err := s.DB.Where("id = ? AND deleted = ?", trainingID, false).First(&training).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Training{}, notFoundf("training %s", trainingID)
	}
	if err != nil {
		return models.Training{}, persistencef("get training", err)
	}
	if training.UserID != userID {
		return models.Training{}, ErrPermission
	}
	return training, nil
}
