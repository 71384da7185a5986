package trends

import (
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
)

// TrendWindowSize is how many recorded values a trend looks back over, the latest included.
const TrendWindowSize = 5

// MaxSeriesPoints caps the body metric chart series.
const MaxSeriesPoints = 30

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

type Trend struct {
	// Change is the absolute difference, rounded to one decimal
	Change    float64   `json:"change"`
	Direction Direction `json:"direction"`
	Latest    float64   `json:"latest"`
	Previous  float64   `json:"previous"`
}

type MetricPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

func weightOf(m gymstats.BodyMetric) *float64  { return m.Weight }
func bodyFatOf(m gymstats.BodyMetric) *float64 { return m.BodyFat }

// recorded returns the recorded (present, non-zero) values in the metrics' order.
func recorded(metrics []gymstats.BodyMetric, value func(gymstats.BodyMetric) *float64) []MetricPoint {
	points := make([]MetricPoint, 0, len(metrics))
	for _, m := range metrics {
		if v := value(m); v != nil && *v != 0 {
			points = append(points, MetricPoint{Date: m.Date, Value: *v})
		}
	}
	return points
}

func trend(points []MetricPoint) *Trend {
	if len(points) > TrendWindowSize {
		points = points[:TrendWindowSize]
	}
	if len(points) < 2 {
		return nil
	}

	latest := points[0].Value
	previous := points[len(points)-1].Value
	change := latest - previous

	direction := DirectionStable
	switch {
	case change > 0:
		direction = DirectionUp
	case change < 0:
		direction = DirectionDown
	}

	return &Trend{
		Change:    roundTo1(math.Abs(change)),
		Direction: direction,
		Latest:    latest,
		Previous:  previous,
	}
}

// WeightTrend compares the latest recorded weight with the oldest of the last
// TrendWindowSize recorded weights. Nil when fewer than two weights are recorded.
func WeightTrend(metrics []gymstats.BodyMetric) *Trend {
	return trend(recorded(metrics, weightOf))
}

// BodyFatTrend is WeightTrend for body fat percentage.
func BodyFatTrend(metrics []gymstats.BodyMetric) *Trend {
	return trend(recorded(metrics, bodyFatOf))
}

func series(points []MetricPoint) []MetricPoint {
	chronological := make([]MetricPoint, len(points))
	for i, p := range points {
		chronological[len(points)-1-i] = p
	}
	if len(chronological) > MaxSeriesPoints {
		chronological = chronological[len(chronological)-MaxSeriesPoints:]
	}
	return chronological
}

// WeightSeries returns the last MaxSeriesPoints recorded weights, oldest first.
func WeightSeries(metrics []gymstats.BodyMetric) []MetricPoint {
	return series(recorded(metrics, weightOf))
}

// BodyFatSeries returns the last MaxSeriesPoints recorded body fat values, oldest first.
func BodyFatSeries(metrics []gymstats.BodyMetric) []MetricPoint {
	return series(recorded(metrics, bodyFatOf))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
