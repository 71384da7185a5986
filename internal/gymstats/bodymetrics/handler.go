package bodymetrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats"
	"github.com/2beens/gymtracker/internal/gymstats/storage"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodymetrics_test

type bodyMetricsStore interface {
	Save(ctx context.Context, metric gymstats.BodyMetric) (*storage.SaveResult, error)
	ListAll(ctx context.Context, userID string) ([]gymstats.BodyMetric, error)
}

type identityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type SaveBodyMetricRequest struct {
	// Date is a calendar day, e.g. 2024-01-15. Empty means today.
	Date    string   `json:"date"`
	Weight  *float64 `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
	Notes   string   `json:"notes"`
	// PhotoRef is a reference returned by the photo upload, if the upload succeeded
	PhotoRef string `json:"photoRef"`
}

type SaveBodyMetricResponse struct {
	Metric gymstats.BodyMetric `json:"metric"`
	Result *storage.SaveResult `json:"result"`
}

type ListResponse struct {
	Metrics []gymstats.BodyMetric `json:"metrics"`
	Total   int                   `json:"total"`
}

type Handler struct {
	store          bodyMetricsStore
	identity       identityProvider
	metricsManager *metrics.Manager
}

func NewHandler(store bodyMetricsStore, identity identityProvider, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		identity:       identity,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodymetrics.save")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveBodyMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save body metric, unmarshal json params: %s", err)
		http.Error(w, "save body metric failed", http.StatusBadRequest)
		return
	}

	date := gymstats.Day(time.Now())
	if strings.TrimSpace(req.Date) != "" {
		date, err = gymstats.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
	}

	metric := gymstats.BodyMetric{
		UserID:   userID,
		Date:     date,
		Weight:   req.Weight,
		BodyFat:  req.BodyFat,
		Notes:    req.Notes,
		PhotoRef: strings.TrimSpace(req.PhotoRef),
	}
	if err := Prepare(&metric); err != nil {
		log.Debugf("save body metric, user [%s]: %s", userID, err)
		http.Error(w, "error, "+err.Error(), SaveErrorStatus(err))
		return
	}

	result, err := handler.store.Save(ctx, metric)
	if err != nil {
		status := SaveErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Errorf("failed to save body metric [%s] for user [%s]: %s", metric.ID, userID, err)
			http.Error(w, "error, failed to save body metric", status)
			return
		}
		http.Error(w, "error, "+err.Error(), status)
		return
	}

	handler.metricsManager.CounterBodyMetricsSaved.Inc()
	handler.metricsManager.CounterMirrorOutcomes.WithLabelValues(storage.CollectionBodyMetrics, string(result.Outcome)).Inc()

	respJson, err := json.Marshal(SaveBodyMetricResponse{
		Metric: metric,
		Result: result,
	})
	if err != nil {
		log.Errorf("failed to marshal saved body metric: %s", err)
		http.Error(w, "error, failed to save body metric", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodymetrics.list")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := handler.store.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("failed to list body metrics for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to list body metrics", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Metrics: list,
		Total:   len(list),
	})
	if err != nil {
		log.Errorf("failed to marshal body metrics: %s", err)
		http.Error(w, "error, failed to list body metrics", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// SaveErrorStatus maps a save error to its response status.
func SaveErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidMetric):
		return http.StatusBadRequest
	case errors.Is(err, ErrMetricExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
