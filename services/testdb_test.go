package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"team-ops-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test and migrates the
// full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.UserSettings{},
		&models.Season{},
		&models.Team{},
		&models.Opponent{},
		&models.Player{},
		&models.Match{},
		&models.PlayerMatchStat{},
		&models.Exercise{},
		&models.Training{},
		&models.TrainingAttendance{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedTeam(t *testing.T, db *gorm.DB, ownerID, name string) models.Team {
	t.Helper()
	team := models.Team{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Name:     name,
		Category: models.CategorySenior,
	}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

func seedPlayer(t *testing.T, db *gorm.DB, teamID string, number int, position models.Position, deleted bool) models.Player {
	t.Helper()
	player := models.Player{
		ID:           uuid.NewString(),
		TeamID:       teamID,
		Name:         fmt.Sprintf("Player%d", number),
		SurnameFirst: "Test",
		Position:     position,
		Number:       number,
		Status:       models.StatusActive,
		Foot:         models.FootRight,
		BirthDate:    utcDate(2000, time.January, 1),
		Deleted:      deleted,
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return player
}

func seedOpponent(t *testing.T, db *gorm.DB, teamID, name string) models.Opponent {
	t.Helper()
	opponent := models.Opponent{
		ID:     uuid.NewString(),
		TeamID: teamID,
		Name:   name,
	}
	if err := db.Create(&opponent).Error; err != nil {
		t.Fatalf("seed opponent: %v", err)
	}
	return opponent
}
