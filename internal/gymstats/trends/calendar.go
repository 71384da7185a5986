package trends

import (
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
	IntensityMax    Intensity = "max"
)

// IntensityOf buckets a day by its total volume. Days without workouts have no intensity.
func IntensityOf(workouts int, volume float64) Intensity {
	switch {
	case workouts == 0:
		return IntensityNone
	case volume > 5000:
		return IntensityMax
	case volume > 3000:
		return IntensityHigh
	case volume > 1000:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

type CalendarDay struct {
	Date      time.Time `json:"date"`
	Workouts  int       `json:"workouts"`
	Volume    float64   `json:"volume"`
	Intensity Intensity `json:"intensity"`
}

type MonthStats struct {
	TotalWorkouts  int     `json:"totalWorkouts"`
	TotalVolume    float64 `json:"totalVolume"`
	TotalExercises int     `json:"totalExercises"`
	AvgVolume      float64 `json:"avgVolume"`
	ActiveDays     int     `json:"activeDays"`
}

type CalendarMonth struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Stats MonthStats    `json:"stats"`
	Days  []CalendarDay `json:"days"`
}

// Calendar builds the statistics of a single month, with one entry per day of the month.
func Calendar(workouts []gymstats.Workout, year int, month time.Month) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	daysInMonth := int(next.Sub(first).Hours() / 24)

	cal := CalendarMonth{
		Year:  year,
		Month: month,
		Days:  make([]CalendarDay, daysInMonth),
	}
	for i := range cal.Days {
		cal.Days[i].Date = first.AddDate(0, 0, i)
	}

	for _, w := range workouts {
		d := gymstats.Day(w.Date)
		if d.Before(first) || !d.Before(next) {
			continue
		}
		cal.Stats.TotalWorkouts++
		cal.Stats.TotalVolume += w.TotalVolume
		cal.Stats.TotalExercises += len(w.Exercises)

		calDay := &cal.Days[d.Day()-1]
		calDay.Workouts++
		calDay.Volume += w.TotalVolume
	}

	for i := range cal.Days {
		calDay := &cal.Days[i]
		calDay.Intensity = IntensityOf(calDay.Workouts, calDay.Volume)
		if calDay.Workouts > 0 {
			cal.Stats.ActiveDays++
		}
	}

	if cal.Stats.TotalWorkouts > 0 {
		cal.Stats.AvgVolume = math.Round(cal.Stats.TotalVolume / float64(cal.Stats.TotalWorkouts))
	}

	return cal
}
