package services

import (
	"errors"
	"testing"
	"time"

	"team-ops-system/models"
)

func TestResolveSeasonCreatesAcademicYear(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	// Before September 1 the season started the previous year.
	season, err := svc.ResolveSeasonFor(utcDate(2025, time.March, 10))
	if err != nil {
		t.Fatalf("resolve season: %v", err)
	}
	if season.Name != "2024/2025" {
		t.Fatalf("expected season 2024/2025, got %q", season.Name)
	}
	if !season.StartDate.Equal(utcDate(2024, time.September, 1)) {
		t.Fatalf("expected start 2024-09-01, got %v", season.StartDate)
	}
	if !season.EndDate.Equal(utcDate(2025, time.August, 31)) {
		t.Fatalf("expected end 2025-08-31, got %v", season.EndDate)
	}

	// On or after September 1 the season starts this year.
	next, err := svc.ResolveSeasonFor(utcDate(2025, time.September, 15))
	if err != nil {
		t.Fatalf("resolve season: %v", err)
	}
	if next.Name != "2025/2026" {
		t.Fatalf("expected season 2025/2026, got %q", next.Name)
	}
	if !next.StartDate.Equal(utcDate(2025, time.September, 1)) || !next.EndDate.Equal(utcDate(2026, time.August, 31)) {
		t.Fatalf("unexpected range %v .. %v", next.StartDate, next.EndDate)
	}

	var count int64
	db.Model(&models.Season{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 seasons, got %d", count)
	}
}

func TestResolveSeasonIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	first, err := svc.ResolveSeasonFor(utcDate(2025, time.March, 10))
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := svc.ResolveSeasonFor(utcDate(2025, time.March, 10))
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same season, got %s and %s", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Season{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 season, got %d", count)
	}
}

func TestResolveSeasonReturnsCoveringSeason(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	created, err := svc.CreateSeason("2024/2025", utcDate(2024, time.September, 1), utcDate(2025, time.August, 31))
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	// A date inside the range returns the existing season untouched, bounds
	// included.
	for _, date := range []time.Time{
		utcDate(2025, time.March, 10),
		utcDate(2024, time.September, 1),
		utcDate(2025, time.August, 31),
	} {
		resolved, err := svc.ResolveSeasonFor(date)
		if err != nil {
			t.Fatalf("resolve %v: %v", date, err)
		}
		if resolved.ID != created.ID {
			t.Fatalf("resolve %v: expected season %s, got %s", date, created.ID, resolved.ID)
		}
	}
}

func TestResolveCurrentSeasonUsesClock(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)
	svc.clock = fixedClock(time.Date(2025, time.September, 15, 18, 30, 0, 0, time.UTC))

	season, err := svc.ResolveCurrentSeason()
	if err != nil {
		t.Fatalf("resolve current season: %v", err)
	}
	if season.Name != "2025/2026" {
		t.Fatalf("expected 2025/2026, got %q", season.Name)
	}
}

func TestCreateSeasonRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	if _, err := svc.CreateSeason("2024/2025", utcDate(2024, time.September, 1), utcDate(2025, time.August, 31)); err != nil {
		t.Fatalf("create season: %v", err)
	}

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"contained", utcDate(2025, time.January, 1), utcDate(2025, time.June, 30)},
		{"straddles start", utcDate(2024, time.June, 1), utcDate(2024, time.October, 1)},
		{"straddles end", utcDate(2025, time.August, 1), utcDate(2025, time.December, 31)},
		{"touches end date", utcDate(2025, time.August, 31), utcDate(2026, time.August, 30)},
	}
	for _, tc := range cases {
		_, err := svc.CreateSeason(tc.name, tc.start, tc.end)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	// Disjoint ranges are fine.
	if _, err := svc.CreateSeason("2025/2026", utcDate(2025, time.September, 1), utcDate(2026, time.August, 31)); err != nil {
		t.Fatalf("create disjoint season: %v", err)
	}
}

func TestUpdateSeasonExcludesSelfFromOverlapCheck(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	season, err := svc.CreateSeason("2024/2025", utcDate(2024, time.September, 1), utcDate(2025, time.August, 31))
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	// Shrinking inside its own range must not trip the overlap check.
	updated, err := svc.UpdateSeason(season.ID, "2024/2025", utcDate(2024, time.September, 15), utcDate(2025, time.August, 15))
	if err != nil {
		t.Fatalf("update season: %v", err)
	}
	if !updated.StartDate.Equal(utcDate(2024, time.September, 15)) {
		t.Fatalf("unexpected start %v", updated.StartDate)
	}

	other, err := svc.CreateSeason("2025/2026", utcDate(2025, time.September, 1), utcDate(2026, time.August, 31))
	if err != nil {
		t.Fatalf("create second season: %v", err)
	}
	_, err = svc.UpdateSeason(other.ID, "2025/2026", utcDate(2025, time.August, 1), utcDate(2026, time.August, 31))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error on overlapping update, got %v", err)
	}
}

func TestCreateSeasonRejectsInvertedRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	_, err := svc.CreateSeason("broken", utcDate(2025, time.August, 31), utcDate(2024, time.September, 1))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSeasonOverlapProperty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeasonService(db)

	dates := []time.Time{
		utcDate(2023, time.March, 1),
		utcDate(2024, time.February, 10),
		utcDate(2025, time.July, 4),
		utcDate(2026, time.January, 20),
	}
	for _, d := range dates {
		if _, err := svc.ResolveSeasonFor(d); err != nil {
			t.Fatalf("resolve %v: %v", d, err)
		}
	}

	var seasons []models.Season
	if err := db.Find(&seasons).Error; err != nil {
		t.Fatalf("load seasons: %v", err)
	}
	for i := range seasons {
		for j := range seasons {
			if i != j && seasons[i].Overlaps(seasons[j]) {
				t.Fatalf("seasons %s and %s overlap", seasons[i].Name, seasons[j].Name)
			}
		}
	}
}
