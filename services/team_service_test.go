package services

import (
	"errors"
	"testing"

	"team-ops-system/models"
)

func TestCreateTeamBuildsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team, err := svc.CreateTeam(coachID, TeamRequest{
		Name:     "CD Peña Sport",
		Category: models.CategoryJuvenil,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if team.Slug != "cd-pena-sport" {
		t.Fatalf("slug = %q", team.Slug)
	}
	if team.OwnerID != coachID {
		t.Fatalf("owner = %q", team.OwnerID)
	}

	_, err = svc.CreateTeam(coachID, TeamRequest{Name: "No Category", Category: "VETERANS"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetTeamsOnlyOwn(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	seedTeam(t, db, coachID, "CD Mine")
	seedTeam(t, db, "someone-else", "CD Theirs")

	teams, err := svc.GetTeams(coachID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "CD Mine" {
		t.Fatalf("unexpected teams %+v", teams)
	}
}

func TestDeleteTeamHidesIt(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	team := seedTeam(t, db, coachID, "CD Mine")

	if err := svc.DeleteTeam("intruder", team.ID); !errors.Is(err, ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if err := svc.DeleteTeam(coachID, team.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if _, err := svc.GetTeam(coachID, team.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOpponentOwnershipFollowsTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewOpponentService(db)
	team := seedTeam(t, db, coachID, "CD Mine")

	opponent, err := svc.CreateOpponent(coachID, OpponentRequest{
		TeamID: team.ID, Name: "UD Rival", Field: "Campo Sur",
	})
	if err != nil {
		t.Fatalf("create opponent: %v", err)
	}

	if _, err := svc.CreateOpponent("intruder", OpponentRequest{
		TeamID: team.ID, Name: "UD Rival",
	}); !errors.Is(err, ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}

	if _, err := opponentOwnedBy(db, opponent.ID, "intruder"); !errors.Is(err, ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if _, err := opponentOwnedBy(db, opponent.ID, coachID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
}

func TestExercisesOwnedByRejectsMixedBatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewExerciseService(db)

	mine, err := svc.CreateExercise(coachID, ExerciseRequest{Title: "Rondo 5v2"})
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	theirs, err := svc.CreateExercise("someone-else", ExerciseRequest{Title: "Pressing"})
	if err != nil {
		t.Fatalf("create foreign exercise: %v", err)
	}

	if _, err := exercisesOwnedBy(db, []string{mine.ID}, coachID); err != nil {
		t.Fatalf("own batch: %v", err)
	}
	if _, err := exercisesOwnedBy(db, []string{mine.ID, theirs.ID}, coachID); !errors.Is(err, ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if _, err := exercisesOwnedBy(db, []string{mine.ID, "missing"}, coachID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.DeleteExercise(coachID, mine.ID); err != nil {
		t.Fatalf("delete exercise: %v", err)
	}
	if _, err := exercisesOwnedBy(db, []string{mine.ID}, coachID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
