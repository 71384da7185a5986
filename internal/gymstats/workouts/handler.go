package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsStore interface {
	Save(ctx context.Context, workout gymstats.Workout) (*storage.SaveResult, error)
	ListAll(ctx context.Context, userID string) ([]gymstats.Workout, error)
}

type identityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type SaveWorkoutRequest struct {
	Name string `json:"name"`
	// Date is a calendar day, e.g. 2024-01-15. Empty means today.
	Date      string              `json:"date"`
	Exercises []gymstats.Exercise `json:"exercises"`
}

type SaveWorkoutResponse struct {
	Workout gymstats.Workout    `json:"workout"`
	Result  *storage.SaveResult `json:"result"`
}

type ListResponse struct {
	Workouts []gymstats.Workout `json:"workouts"`
	Total    int                `json:"total"`
}

type Handler struct {
	store          workoutsStore
	identity       identityProvider
	metricsManager *metrics.Manager
}

func NewHandler(store workoutsStore, identity identityProvider, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		identity:       identity,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
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

	var req SaveWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save workout, unmarshal json params: %s", err)
		http.Error(w, "save workout failed", http.StatusBadRequest)
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

	workout := gymstats.Workout{
		UserID:    userID,
		Name:      req.Name,
		Date:      date,
		Exercises: req.Exercises,
	}
	if err := Prepare(&workout); err != nil {
		log.Debugf("save workout, user [%s]: %s", userID, err)
		http.Error(w, "error, "+err.Error(), SaveErrorStatus(err))
		return
	}

	result, err := handler.store.Save(ctx, workout)
	if err != nil {
		status := SaveErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Errorf("failed to save workout [%s] for user [%s]: %s", workout.ID, userID, err)
			http.Error(w, "error, failed to save workout", status)
			return
		}
		http.Error(w, "error, "+err.Error(), status)
		return
	}

	handler.metricsManager.CounterWorkoutsSaved.Inc()
	handler.metricsManager.CounterMirrorOutcomes.WithLabelValues(storage.CollectionWorkouts, string(result.Outcome)).Inc()

	respJson, err := json.Marshal(SaveWorkoutResponse{
		Workout: workout,
		Result:  result,
	})
	if err != nil {
		log.Errorf("failed to marshal saved workout: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout [%s] saved for user [%s]: %s", workout.ID, userID, result.Outcome)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	workouts, err := handler.store.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("failed to list workouts for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// SaveErrorStatus maps a save error to its response status.
func SaveErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidWorkout),
		errors.Is(err, ErrInvalidExercise),
		errors.Is(err, ErrInvalidReps):
		return http.StatusBadRequest
	case errors.Is(err, ErrWorkoutExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
