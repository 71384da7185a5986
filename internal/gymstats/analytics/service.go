// Package analytics serves the derived gym statistics of one user.
// Every view is recomputed from the user's full history on read.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/records"
	"github.com/2beens/gymtracker/internal/gymstats/trends"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=analytics_test

const (
	DefaultMuscleGroupDays = 30
	DefaultProgressDays    = 30
)

var (
	ErrInvalidRange   = errors.New("invalid time range")
	errRecordTooLarge = errors.New("record larger than a cache entry")
)

const (
	// freecache rejects entries larger than 1/1024 of its size, minus the entry header
	cacheMinSizeBytes       = 512 * 1024
	cacheEntryHeaderBytes   = 24
	recordsChunkKeyOverhead = 32
)

func maxCacheEntryBytes(cacheSizeBytes int) int {
	if cacheSizeBytes < cacheMinSizeBytes {
		cacheSizeBytes = cacheMinSizeBytes
	}
	return cacheSizeBytes/1024 - cacheEntryHeaderBytes
}

// ProgressRanges are the accepted progress windows in days, 0 meaning all time.
var ProgressRanges = []int{30, 90, 180, 365, 0}

type workoutsLister interface {
	ListAll(ctx context.Context, userID string) ([]gymstats.Workout, error)
}

type bodyMetricsLister interface {
	ListAll(ctx context.Context, userID string) ([]gymstats.BodyMetric, error)
}

type DashboardResponse struct {
	Stats    trends.DashboardStats `json:"stats"`
	Activity []trends.DayActivity  `json:"activity"`
}

type RecordsResponse struct {
	MuscleGroup  string            `json:"muscleGroup"`
	MuscleGroups []string          `json:"muscleGroups"`
	Records      []*records.Record `json:"records"`
	ByWeight     []*records.Record `json:"byWeight"`
	ByOneRepMax  []*records.Record `json:"byOneRepMax"`
	ByVolume     []*records.Record `json:"byVolume"`
	Summary      records.Summary   `json:"summary"`
}

type RecentRecordsResponse struct {
	Records []*records.Record `json:"records"`
	Total   int               `json:"total"`
}

type MuscleGroupsResponse struct {
	Days        int                          `json:"days"`
	Groups      []gymstats.MuscleGroupVolume `json:"groups"`
	TotalVolume float64                      `json:"totalVolume"`
	MostTrained string                       `json:"mostTrained"`
}

type ProgressSummary struct {
	Workouts       int     `json:"workouts"`
	AvgVolume      float64 `json:"avgVolume"`
	WeeklyAverage  float64 `json:"weeklyAverage"`
	PeakVolumeDate string  `json:"peakVolumeDate,omitempty"`
	// VolumeGrowth is the percentage change between the first and last workout volume in range
	VolumeGrowth     float64 `json:"volumeGrowth"`
	ExerciseVariety  int     `json:"exerciseVariety"`
	ConsistencyScore float64 `json:"consistencyScore"`
}

type ProgressResponse struct {
	Exercise  string                 `json:"exercise"`
	Days      int                    `json:"days"`
	Exercises []string               `json:"exercises"`
	Points    []trends.ProgressPoint `json:"points"`
	Volume    []trends.VolumePoint   `json:"volume"`
	Summary   ProgressSummary        `json:"summary"`
}

type BodyTrendsResponse struct {
	Weight        *trends.Trend        `json:"weight"`
	BodyFat       *trends.Trend        `json:"bodyFat"`
	WeightSeries  []trends.MetricPoint `json:"weightSeries"`
	BodyFatSeries []trends.MetricPoint `json:"bodyFatSeries"`
}

type Service struct {
	workouts       workoutsLister
	bodyMetrics    bodyMetricsLister
	recordsCache   *freecache.Cache
	maxEntryBytes  int
	cacheExpireSec int
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	workouts workoutsLister,
	bodyMetrics bodyMetricsLister,
	cacheSizeBytes int,
	cacheExpiration time.Duration,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:       workouts,
		bodyMetrics:    bodyMetrics,
		recordsCache:   freecache.NewCache(cacheSizeBytes),
		maxEntryBytes:  maxCacheEntryBytes(cacheSizeBytes),
		cacheExpireSec: int(cacheExpiration.Seconds()),
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the service clock, used in tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) observe(computation string, start time.Time) {
	s.metricsManager.HistAnalyticsDuration.WithLabelValues(computation).Observe(time.Since(start).Seconds())
}

func (s *Service) Dashboard(ctx context.Context, userID string) (_ *DashboardResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	bodyMetrics, err := s.bodyMetrics.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}

	defer s.observe("dashboard", time.Now())
	now := s.now()
	return &DashboardResponse{
		Stats:    trends.Dashboard(workouts, bodyMetrics, now),
		Activity: trends.Activity(workouts, now, trends.DefaultActivityDays),
	}, nil
}

// recordsCacheKey changes whenever a workout is added, so stale entries are never read.
func recordsCacheKey(userID string, workouts []gymstats.Workout) []byte {
	var newestID string
	var newest time.Time
	for _, w := range workouts {
		if w.CreatedAt.After(newest) {
			newest = w.CreatedAt
			newestID = w.ID
		}
	}
	return []byte(fmt.Sprintf("records::%s::%d::%s::%d", userID, len(workouts), newestID, newest.UnixNano()))
}

// personalRecords calculates the records of the given history, or reads them from cache.
func (s *Service) personalRecords(ctx context.Context, userID string, workouts []gymstats.Workout) map[string]*records.Record {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.personalRecords")
	defer span.End()

	cacheKey := recordsCacheKey(userID, workouts)
	if all, ok := s.cachedRecords(userID, cacheKey); ok {
		s.metricsManager.CounterRecordsCache.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return all
	}
	s.metricsManager.CounterRecordsCache.WithLabelValues("miss").Inc()
	span.SetAttributes(attribute.Bool("cache.hit", false))

	start := time.Now()
	all := records.Calculate(workouts)
	s.observe("records", start)

	s.cacheRecords(userID, cacheKey, all)
	return all
}

func recordsChunkKey(cacheKey []byte, i int) []byte {
	return []byte(fmt.Sprintf("%s::chunk::%d", cacheKey, i))
}

// recordChunks packs the JSON encoded records into arrays of at most limit bytes.
func recordChunks(list []*records.Record, limit int) ([][]byte, error) {
	var chunks [][]byte
	chunk := []byte{'['}
	for _, r := range list {
		recordBytes, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal record [%s]: %w", r.ExerciseName, err)
		}
		if len(recordBytes)+2 > limit {
			return nil, fmt.Errorf("%w: record [%s] takes %d bytes", errRecordTooLarge, r.ExerciseName, len(recordBytes))
		}
		if len(chunk) > 1 && len(chunk)+len(recordBytes)+2 > limit {
			chunks = append(chunks, append(chunk, ']'))
			chunk = []byte{'['}
		}
		if len(chunk) > 1 {
			chunk = append(chunk, ',')
		}
		chunk = append(chunk, recordBytes...)
	}
	if len(chunk) > 1 {
		chunks = append(chunks, append(chunk, ']'))
	}
	return chunks, nil
}

// cacheRecords stores the records as numbered chunks, then the chunk count under cacheKey.
func (s *Service) cacheRecords(userID string, cacheKey []byte, all map[string]*records.Record) {
	chunks, err := recordChunks(records.List(all), s.maxEntryBytes-len(cacheKey)-recordsChunkKeyOverhead)
	if err != nil {
		log.Debugf("records of user [%s] not cached: %s", userID, err)
		return
	}
	for i, chunk := range chunks {
		if err := s.recordsCache.Set(recordsChunkKey(cacheKey, i), chunk, s.cacheExpireSec); err != nil {
			logCacheSetErr(userID, err)
			return
		}
	}
	if err := s.recordsCache.Set(cacheKey, []byte(strconv.Itoa(len(chunks))), s.cacheExpireSec); err != nil {
		logCacheSetErr(userID, err)
		return
	}
	log.Tracef("records cache set for user [%s] in %d chunks", userID, len(chunks))
}

func logCacheSetErr(userID string, err error) {
	if errors.Is(err, freecache.ErrLargeEntry) {
		log.Debugf("records of user [%s] not cached: %s", userID, err)
		return
	}
	log.Warnf("failed to cache records for user [%s]: %s", userID, err)
}

// cachedRecords reads back the records stored by cacheRecords. Any evicted chunk is a miss.
func (s *Service) cachedRecords(userID string, cacheKey []byte) (map[string]*records.Record, bool) {
	countBytes, err := s.recordsCache.Get(cacheKey)
	if err != nil {
		return nil, false
	}
	count, err := strconv.Atoi(string(countBytes))
	if err != nil {
		log.Errorf("invalid records chunk count for user [%s]: %s", userID, err)
		return nil, false
	}

	all := make(map[string]*records.Record)
	for i := 0; i < count; i++ {
		chunk, err := s.recordsCache.Get(recordsChunkKey(cacheKey, i))
		if err != nil {
			return nil, false
		}
		var list []*records.Record
		if err := json.Unmarshal(chunk, &list); err != nil {
			log.Errorf("failed to unmarshal cached records for user [%s]: %s", userID, err)
			return nil, false
		}
		for _, r := range list {
			all[records.Key(r.ExerciseName)] = r
		}
	}
	return all, true
}

func (s *Service) Records(ctx context.Context, userID, muscleGroup string) (_ *RecordsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	all := s.personalRecords(ctx, userID, workouts)
	if muscleGroup == "" {
		muscleGroup = records.AllMuscleGroups
	}
	selected := records.FilterByMuscleGroup(records.List(all), muscleGroup)

	return &RecordsResponse{
		MuscleGroup:  muscleGroup,
		MuscleGroups: records.MuscleGroups(all),
		Records:      selected,
		ByWeight:     records.SortedByWeight(selected),
		ByOneRepMax:  records.SortedByOneRepMax(selected),
		ByVolume:     records.SortedByVolume(selected),
		Summary:      records.Summarize(all, selected, s.now()),
	}, nil
}

func (s *Service) RecentRecords(ctx context.Context, userID string) (_ *RecentRecordsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.recentRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	recent := records.Recent(s.personalRecords(ctx, userID, workouts), s.now())
	return &RecentRecordsResponse{
		Records: recent,
		Total:   len(recent),
	}, nil
}

func (s *Service) MuscleGroups(ctx context.Context, userID string, days int) (_ *MuscleGroupsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if days < 0 {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidRange, days)
	}

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	defer s.observe("muscle_groups", time.Now())
	inRange := trends.InWindow(workouts, s.now(), days)
	groups := gymstats.SortedMuscleGroupVolumes(gymstats.WorkoutsMuscleGroupVolumes(inRange))

	resp := &MuscleGroupsResponse{
		Days:   days,
		Groups: groups,
	}
	for _, g := range groups {
		resp.TotalVolume += g.Volume
	}
	if len(groups) > 0 {
		resp.MostTrained = groups[0].MuscleGroup
	}
	return resp, nil
}

func validProgressRange(days int) bool {
	for _, r := range ProgressRanges {
		if r == days {
			return true
		}
	}
	return false
}

func (s *Service) Progress(ctx context.Context, userID, exercise string, days int) (_ *ProgressResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !validProgressRange(days) {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidRange, days)
	}

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	defer s.observe("progress", time.Now())
	now := s.now()
	resp := &ProgressResponse{
		Exercise:  exercise,
		Days:      days,
		Exercises: trends.ExerciseNames(workouts),
		Points:    []trends.ProgressPoint{},
		Volume:    trends.VolumeProgress(workouts, now, days),
	}
	if exercise != "" {
		resp.Points = trends.ExerciseProgress(workouts, exercise, now, days)
	}
	resp.Summary = progressSummary(trends.InWindow(workouts, now, days), resp.Volume, len(resp.Exercises), days)

	return resp, nil
}

// progressSummary expects the volume series in chronological order.
func progressSummary(inRange []gymstats.Workout, volume []trends.VolumePoint, variety, days int) ProgressSummary {
	summary := ProgressSummary{
		Workouts:        len(inRange),
		AvgVolume:       gymstats.AverageWorkoutVolume(inRange),
		ExerciseVariety: variety,
	}
	if days > 0 {
		summary.WeeklyAverage = math.Round(float64(len(inRange)) / (float64(days) / 7))
		summary.ConsistencyScore = math.Round(float64(len(inRange)) / float64(days) * 100)
	}

	if len(volume) == 0 {
		return summary
	}
	peak := volume[0]
	for _, p := range volume[1:] {
		if p.Volume > peak.Volume {
			peak = p
		}
	}
	summary.PeakVolumeDate = peak.Date.Format(gymstats.DateLayout)

	if len(volume) >= 2 {
		first, last := volume[0].Volume, volume[len(volume)-1].Volume
		summary.VolumeGrowth = math.Round((last - first) / math.Max(first, 1) * 100)
	}
	return summary
}

func (s *Service) Calendar(ctx context.Context, userID string, year int, month time.Month) (_ *trends.CalendarMonth, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if month < time.January || month > time.December || year < 1 {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, year, month)
	}

	workouts, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	defer s.observe("calendar", time.Now())
	calendar := trends.Calendar(workouts, year, month)
	return &calendar, nil
}

func (s *Service) BodyTrends(ctx context.Context, userID string) (_ *BodyTrendsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.bodyTrends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodyMetrics, err := s.bodyMetrics.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}

	defer s.observe("body_trends", time.Now())
	return &BodyTrendsResponse{
		Weight:        trends.WeightTrend(bodyMetrics),
		BodyFat:       trends.BodyFatTrend(bodyMetrics),
		WeightSeries:  trends.WeightSeries(bodyMetrics),
		BodyFatSeries: trends.BodyFatSeries(bodyMetrics),
	}, nil
}
