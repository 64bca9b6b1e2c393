package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"team-ops-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seasonBoundaryMonth is the academic-year boundary: a season runs from
// September 1 to August 31 of the following year.
const seasonBoundaryMonth = time.September

// SeasonService resolves and creates the season covering a given date and
// enforces that no two seasons' date ranges overlap.
type SeasonService struct {
	DB    *gorm.DB
	clock func() time.Time
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db, clock: time.Now}
}

// ResolveCurrentSeason returns the season covering today, creating it if no
// season does. Idempotent: a second call with the same date returns the
// season the first call created.
func (s *SeasonService) ResolveCurrentSeason() (models.Season, error) {
	return s.ResolveSeasonFor(s.clock())
}

// ResolveSeasonFor returns the season covering the given date, creating the
// deterministic September-to-August season when none exists.
func (s *SeasonService) ResolveSeasonFor(date time.Time) (models.Season, error) {
	day := truncateToDay(date)

	var season models.Season
	err := s.DB.Where("start_date <= ? AND end_date >= ?", day, day).First(&season).Error
	if err == nil {
		return season, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Season{}, persistencef("resolve season", err)
	}

	candidate := seasonForDate(day)
	candidate.ID = uuid.NewString()
	if err := s.validateNoOverlap(candidate); err != nil {
		return models.Season{}, err
	}
	if err := s.DB.Create(&candidate).Error; err != nil {
		log.Printf("[SEASON] failed to auto-create season %s: %v", candidate.Name, err)
		return models.Season{}, persistencef("create season", err)
	}
	log.Printf("[SEASON] auto-created season %s [%s .. %s]",
		candidate.Name, candidate.StartDate.Format("2006-01-02"), candidate.EndDate.Format("2006-01-02"))
	return candidate, nil
}

// GetSeason returns a season by id.
func (s *SeasonService) GetSeason(id string) (models.Season, error) {
	var season models.Season
	if err := s.DB.First(&season, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Season{}, notFoundf("season %s", id)
		}
		return models.Season{}, persistencef("get season", err)
	}
	return season, nil
}

// ListSeasons returns all seasons ordered by start date, newest first.
func (s *SeasonService) ListSeasons() ([]models.Season, error) {
	var seasons []models.Season
	if err := s.DB.Order("start_date DESC").Find(&seasons).Error; err != nil {
		return nil, persistencef("list seasons", err)
	}
	return seasons, nil
}

// CreateSeason persists an administratively supplied season after checking
// its range against every existing season.
func (s *SeasonService) CreateSeason(name string, start, end time.Time) (models.Season, error) {
	start, end = truncateToDay(start), truncateToDay(end)
	if end.Before(start) {
		return models.Season{}, validationf("season end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	season := models.Season{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.validateNoOverlap(season); err != nil {
		return models.Season{}, err
	}
	if err := s.DB.Create(&season).Error; err != nil {
		return models.Season{}, persistencef("create season", err)
	}
	log.Printf("[SEASON] created season %s", season.Name)
	return season, nil
}

// UpdateSeason changes a season's name or range; the overlap check excludes
// the season's own row.
func (s *SeasonService) UpdateSeason(id, name string, start, end time.Time) (models.Season, error) {
	season, err := s.GetSeason(id)
	if err != nil {
		return models.Season{}, err
	}
	start, end = truncateToDay(start), truncateToDay(end)
	if end.Before(start) {
		return models.Season{}, validationf("season end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	season.Name = name
	season.StartDate = start
	season.EndDate = end
	if err := s.validateNoOverlap(season); err != nil {
		return models.Season{}, err
	}
	if err := s.DB.Save(&season).Error; err != nil {
		return models.Season{}, persistencef("update season", err)
	}
	return season, nil
}

// validateNoOverlap rejects the candidate if any other season's range
// intersects it. Two ranges intersect iff a.start <= b.end AND a.end >= b.start.
func (s *SeasonService) validateNoOverlap(candidate models.Season) error {
	var overlapping []models.Season
	query := s.DB.Where("start_date <= ? AND end_date >= ?", candidate.EndDate, candidate.StartDate)
	if candidate.ID != "" {
		query = query.Where("id <> ?", candidate.ID)
	}
	if err := query.Find(&overlapping).Error; err != nil {
		return persistencef("overlap check", err)
	}
	if len(overlapping) > 0 {
		return validationf("season %s overlaps existing season %s", candidate.Name, overlapping[0].Name)
	}
	return nil
}

// seasonForDate computes the deterministic season covering the date: before
// September 1 the season started the previous year, otherwise this year.
func seasonForDate(date time.Time) models.Season {
	year := date.Year()
	boundary := time.Date(year, seasonBoundaryMonth, 1, 0, 0, 0, 0, time.UTC)

	startYear := year
	if date.Before(boundary) {
		startYear = year - 1
	}
	return models.Season{
		Name:      fmt.Sprintf("%d/%d", startYear, startYear+1),
		StartDate: time.Date(startYear, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(startYear+1, time.August, 31, 0, 0, 0, 0, time.UTC),
	}
}

// truncateToDay normalizes a timestamp to UTC midnight so date comparisons
// behave the same in storage and in memory.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
