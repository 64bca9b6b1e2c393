package services

import (
	"log"
	"time"

	"team-ops-system/models"

	"gorm.io/gorm"
)

// SeedService loads a demo team for local development. Enabled with
// SEED_DEV_DATA=true; it does nothing once any team exists.
type SeedService struct {
	DB        *gorm.DB
	Teams     *TeamService
	Players   *PlayerService
	Opponents *OpponentService
	Exercises *ExerciseService
}

func NewSeedService(db *gorm.DB, teams *TeamService, players *PlayerService, opponents *OpponentService, exercises *ExerciseService) *SeedService {
	return &SeedService{DB: db, Teams: teams, Players: players, Opponents: opponents, Exercises: exercises}
}

const seedUserID = "dev-user"

// SeedDevData creates one demo team with a small roster, two opponents and
// a couple of exercises.
func (s *SeedService) SeedDevData() error {
	var teams int64
	if err := s.DB.Model(&models.Team{}).Count(&teams).Error; err != nil {
		return persistencef("count teams", err)
	}
	if teams > 0 {
		log.Println("[SEED] teams already exist, skipping dev data")
		return nil
	}

	team, err := s.Teams.CreateTeam(seedUserID, TeamRequest{
		Name:     "CD Demo",
		Category: models.CategorySenior,
		Field:    "Campo Municipal",
	})
	if err != nil {
		return err
	}

	demoPlayers := []PlayerRequest{
		{Name: "Iker", SurnameFirst: "García", Position: models.PositionGoalkeeper, Number: 1, Status: models.StatusActive, Foot: models.FootRight, BirthDate: time.Date(1998, 5, 12, 0, 0, 0, 0, time.UTC)},
		{Name: "Marc", SurnameFirst: "López", SurnameSecond: "Ruiz", Position: models.PositionCentreBack, Number: 4, Status: models.StatusActive, Foot: models.FootRight, BirthDate: time.Date(1999, 11, 3, 0, 0, 0, 0, time.UTC)},
		{Name: "Jordi", SurnameFirst: "Martín", Position: models.PositionLeftBack, Number: 3, Status: models.StatusInjured, Foot: models.FootLeft, BirthDate: time.Date(2001, 2, 20, 0, 0, 0, 0, time.UTC)},
		{Name: "Pau", SurnameFirst: "Sánchez", Position: models.PositionCentreMid, Number: 8, Status: models.StatusActive, Foot: models.FootRight, BirthDate: time.Date(2000, 7, 29, 0, 0, 0, 0, time.UTC)},
		{Name: "Álvaro", SurnameFirst: "Navarro", Position: models.PositionCentreForward, Number: 9, Status: models.StatusActive, Foot: models.FootBoth, BirthDate: time.Date(1997, 9, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, req := range demoPlayers {
		req.TeamID = team.ID
		if _, err := s.Players.CreatePlayer(seedUserID, req); err != nil {
			return err
		}
	}

	for _, name := range []string{"UD Rival", "Atlético Vecino"} {
		if _, err := s.Opponents.CreateOpponent(seedUserID, OpponentRequest{TeamID: team.ID, Name: name}); err != nil {
			return err
		}
	}

	demoExercises := []ExerciseRequest{
		{Title: "Rondo 5v2", Description: "Possession under pressure", Category: "TECHNICAL"},
		{Title: "Pressing triggers", Description: "Defensive block shifts", Category: "TACTICAL"},
	}
	for _, req := range demoExercises {
		if _, err := s.Exercises.CreateExercise(seedUserID, req); err != nil {
			return err
		}
	}

	log.Printf("[SEED] demo team %s seeded with %d players", team.Name, len(demoPlayers))
	return nil
}
