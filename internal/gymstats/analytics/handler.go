package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/trends"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type statsService interface {
	Dashboard(ctx context.Context, userID string) (*DashboardResponse, error)
	Records(ctx context.Context, userID, muscleGroup string) (*RecordsResponse, error)
	RecentRecords(ctx context.Context, userID string) (*RecentRecordsResponse, error)
	MuscleGroups(ctx context.Context, userID string, days int) (*MuscleGroupsResponse, error)
	Progress(ctx context.Context, userID, exercise string, days int) (*ProgressResponse, error)
	Calendar(ctx context.Context, userID string, year int, month time.Month) (*trends.CalendarMonth, error)
	BodyTrends(ctx context.Context, userID string) (*BodyTrendsResponse, error)
}

type identityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type Handler struct {
	service  statsService
	identity identityProvider
}

func NewHandler(service statsService, identity identityProvider) *Handler {
	return &Handler{
		service:  service,
		identity: identity,
	}
}

func (handler *Handler) userID(ctx context.Context, w http.ResponseWriter) (string, bool) {
	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// daysParam reads the "days" query param, falling back to def when missing.
func daysParam(r *http.Request, def int) (int, error) {
	daysStr := strings.TrimSpace(r.URL.Query().Get("days"))
	if daysStr == "" {
		return def, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return 0, ErrInvalidRange
	}
	return days, nil
}

func writeStats(w http.ResponseWriter, what string, resp any, err error) {
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get %s: %s", what, err)
		http.Error(w, "error, failed to get "+what, http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal %s response: %s", what, err)
		http.Error(w, "error, failed to get "+what, http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	resp, err := handler.service.Dashboard(ctx, userID)
	writeStats(w, "dashboard", resp, err)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	resp, err := handler.service.Records(ctx, userID, r.URL.Query().Get("muscle_group"))
	writeStats(w, "records", resp, err)
}

func (handler *Handler) HandleRecentRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records.recent")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	resp, err := handler.service.RecentRecords(ctx, userID)
	writeStats(w, "recent records", resp, err)
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscle_groups")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	days, err := daysParam(r, DefaultMuscleGroupDays)
	if err != nil {
		http.Error(w, "error, invalid days parameter", http.StatusBadRequest)
		return
	}

	resp, err := handler.service.MuscleGroups(ctx, userID, days)
	writeStats(w, "muscle groups", resp, err)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	days, err := daysParam(r, DefaultProgressDays)
	if err != nil {
		http.Error(w, "error, invalid days parameter", http.StatusBadRequest)
		return
	}

	exercise := strings.TrimSpace(r.URL.Query().Get("exercise"))
	resp, err := handler.service.Progress(ctx, userID, exercise, days)
	writeStats(w, "progress", resp, err)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}

	resp, err := handler.service.Calendar(ctx, userID, year, time.Month(month))
	writeStats(w, "calendar", resp, err)
}

func (handler *Handler) HandleBodyTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.body_trends")
	defer span.End()

	userID, ok := handler.userID(ctx, w)
	if !ok {
		return
	}

	resp, err := handler.service.BodyTrends(ctx, userID)
	writeStats(w, "body trends", resp, err)
}
