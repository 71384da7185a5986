package bodymetrics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"

	"github.com/google/uuid"
)

var (
	ErrInvalidMetric = errors.New("invalid body metric")
	ErrMetricExists  = errors.New("body metric already exists")
)

// Validate checks a body metric entry before it is persisted.
// An entry has to record at least one of weight, body fat or a photo.
func Validate(m gymstats.BodyMetric) error {
	if strings.TrimSpace(m.UserID) == "" {
		return fmt.Errorf("%w: missing user", ErrInvalidMetric)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidMetric)
	}
	if m.Weight != nil && (*m.Weight < 0 || !isFinite(*m.Weight)) {
		return fmt.Errorf("%w: weight [%v]", ErrInvalidMetric, *m.Weight)
	}
	if m.BodyFat != nil && (*m.BodyFat < 0 || *m.BodyFat > 100 || !isFinite(*m.BodyFat)) {
		return fmt.Errorf("%w: body fat [%v] must be a percentage", ErrInvalidMetric, *m.BodyFat)
	}
	if m.PhotoRef != "" && !strings.HasPrefix(m.PhotoRef, m.UserID+"/") {
		return fmt.Errorf("%w: photo [%s] belongs to another user", ErrInvalidMetric, m.PhotoRef)
	}
	if !recorded(m.Weight) && !recorded(m.BodyFat) && m.PhotoRef == "" {
		return fmt.Errorf("%w: nothing recorded", ErrInvalidMetric)
	}
	return nil
}

// Prepare validates the entry, assigns its id and creation time if missing,
// and drops zero values, which mean "not recorded".
func Prepare(m *gymstats.BodyMetric) error {
	if err := Validate(*m); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if !recorded(m.Weight) {
		m.Weight = nil
	}
	if !recorded(m.BodyFat) {
		m.BodyFat = nil
	}
	m.Notes = strings.TrimSpace(m.Notes)
	m.Date = gymstats.Day(m.Date)
	return nil
}

func recorded(v *float64) bool {
	return v != nil && *v != 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
