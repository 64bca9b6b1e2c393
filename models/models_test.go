package models

import (
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonOverlaps(t *testing.T) {
	season := Season{StartDate: day(2024, time.September, 1), EndDate: day(2025, time.August, 31)}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", day(2024, time.September, 1), day(2025, time.August, 31), true},
		{"contained", day(2025, time.January, 1), day(2025, time.June, 1), true},
		{"shares start bound", day(2024, time.June, 1), day(2024, time.September, 1), true},
		{"shares end bound", day(2025, time.August, 31), day(2026, time.August, 30), true},
		{"before", day(2023, time.September, 1), day(2024, time.August, 31), false},
		{"after", day(2025, time.September, 1), day(2026, time.August, 31), false},
	}
	for _, tc := range cases {
		other := Season{StartDate: tc.start, EndDate: tc.end}
		if got := season.Overlaps(other); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := other.Overlaps(season); got != tc.want {
			t.Errorf("%s (reversed): Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSeasonContains(t *testing.T) {
	season := Season{StartDate: day(2024, time.September, 1), EndDate: day(2025, time.August, 31)}

	if !season.Contains(day(2024, time.September, 1)) || !season.Contains(day(2025, time.August, 31)) {
		t.Error("bounds must be inclusive")
	}
	if !season.Contains(day(2025, time.February, 14)) {
		t.Error("interior date must be contained")
	}
	if season.Contains(day(2024, time.August, 31)) || season.Contains(day(2025, time.September, 1)) {
		t.Error("adjacent days must not be contained")
	}
}

func TestPlayerFullName(t *testing.T) {
	p := Player{Name: "Iker", SurnameFirst: "Alonso", SurnameSecond: "García"}
	if got := p.FullName(); got != "Iker Alonso García" {
		t.Errorf("FullName = %q", got)
	}
	p.SurnameSecond = ""
	if got := p.FullName(); got != "Iker Alonso" {
		t.Errorf("FullName without second surname = %q", got)
	}
}

func TestPlayerAgeAt(t *testing.T) {
	p := Player{BirthDate: day(2000, time.May, 20)}

	cases := []struct {
		now  time.Time
		want int
	}{
		{day(2024, time.May, 19), 23},
		{day(2024, time.May, 20), 24},
		{day(2024, time.October, 5), 24},
		{day(2024, time.January, 1), 23},
	}
	for _, tc := range cases {
		if got := p.AgeAt(tc.now); got != tc.want {
			t.Errorf("AgeAt(%v) = %d, want %d", tc.now, got, tc.want)
		}
	}

	if got := (Player{}).AgeAt(day(2024, time.May, 20)); got != 0 {
		t.Errorf("zero birth date should give 0, got %d", got)
	}
}

func TestPositionOrdering(t *testing.T) {
	if PositionGoalkeeper.Order() >= PositionCentreForward.Order() {
		t.Error("goalkeeper must sort before forward")
	}
	if Position("??").Order() != 999 {
		t.Errorf("unknown position order = %d", Position("??").Order())
	}

	all := AllPositions()
	if len(all) != 11 {
		t.Fatalf("expected 11 positions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Order() > all[i].Order() {
			t.Fatalf("AllPositions out of order at %d: %s after %s", i, all[i], all[i-1])
		}
	}
}
