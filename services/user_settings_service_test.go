package services

import (
	"errors"
	"testing"
	"time"

	"team-ops-system/models"
)

func TestGetSettingsCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserSettingsService(db, 25)

	settings, err := svc.GetSettings(coachID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.MaxPlayersPerTeam != 25 {
		t.Fatalf("default cap = %d, want 25", settings.MaxPlayersPerTeam)
	}

	again, err := svc.GetSettings(coachID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if !again.CreatedAt.Equal(settings.CreatedAt) {
		t.Fatal("second access must return the same row")
	}
	var count int64
	db.Model(&models.UserSettings{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 settings row, got %d", count)
	}
}

func TestUpdateSettings(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserSettingsService(db, 25)

	updated, err := svc.UpdateSettings(coachID, UserSettingsRequest{MaxPlayersPerTeam: 18})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.MaxPlayersPerTeam != 18 {
		t.Fatalf("cap = %d, want 18", updated.MaxPlayersPerTeam)
	}

	reloaded, err := svc.GetSettings(coachID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if reloaded.MaxPlayersPerTeam != 18 {
		t.Fatalf("persisted cap = %d, want 18", reloaded.MaxPlayersPerTeam)
	}

	_, err = svc.UpdateSettings(coachID, UserSettingsRequest{MaxPlayersPerTeam: 0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRosterCapIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPlayerFixture(t, db, 2)
	mine := seedTeam(t, db, coachID, "CD Mine")
	theirs := seedTeam(t, db, "other-coach", "CD Theirs")

	// One coach raises their own cap; the other keeps the default.
	if _, err := svc.Settings.UpdateSettings(coachID, UserSettingsRequest{MaxPlayersPerTeam: 3}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	sign := func(userID, teamID string, number int) error {
		_, err := svc.CreatePlayer(userID, PlayerRequest{
			TeamID:       teamID,
			Name:         "Player",
			SurnameFirst: "Test",
			Position:     models.PositionCentreMid,
			Number:       number,
			Status:       models.StatusActive,
			BirthDate:    utcDate(2000, time.January, 1),
		})
		return err
	}

	for i := 1; i <= 3; i++ {
		if err := sign(coachID, mine.ID, i); err != nil {
			t.Fatalf("sign player %d: %v", i, err)
		}
	}
	var verr *ValidationError
	if err := sign(coachID, mine.ID, 4); !errors.As(err, &verr) {
		t.Fatalf("expected cap rejection at 4, got %v", err)
	}

	for i := 1; i <= 2; i++ {
		if err := sign("other-coach", theirs.ID, i); err != nil {
			t.Fatalf("sign other coach player %d: %v", i, err)
		}
	}
	if err := sign("other-coach", theirs.ID, 3); !errors.As(err, &verr) {
		t.Fatalf("expected default cap rejection at 3, got %v", err)
	}
}
