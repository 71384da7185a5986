package photos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=photos_test

const DefaultMaxPhotoSize = 10 << 20

type photoStore interface {
	Save(ctx context.Context, userID, filename string, photo io.Reader) (string, error)
	Open(ctx context.Context, userID, ref string) (*os.File, error)
	Delete(ctx context.Context, userID, ref string) error
}

type identityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type UploadResponse struct {
	Ref string `json:"ref"`
}

type Handler struct {
	store          photoStore
	identity       identityProvider
	metricsManager *metrics.Manager
	maxSize        int64
}

func NewHandler(store photoStore, identity identityProvider, metricsManager *metrics.Manager, maxSize int64) *Handler {
	if maxSize <= 0 {
		maxSize = DefaultMaxPhotoSize
	}
	return &Handler{
		store:          store,
		identity:       identity,
		metricsManager: metricsManager,
		maxSize:        maxSize,
	}
}

func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.upload")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// multipart overhead on top of the photo itself
	r.Body = http.MaxBytesReader(w, r.Body, handler.maxSize+1<<20)
	if err := r.ParseMultipartForm(handler.maxSize); err != nil {
		log.Debugf("photo upload, parse multipart form: %s", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "error, photo too big", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "error, invalid form", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Errorf("photo upload, remove multipart temp files: %s", err)
		}
	}()

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "error, photo missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > handler.maxSize {
		http.Error(w, "error, photo too big", http.StatusRequestEntityTooLarge)
		return
	}

	log.Tracef("photo upload for user [%s]: %s, %d bytes", userID, fileHeader.Filename, fileHeader.Size)

	ref, err := handler.store.Save(ctx, userID, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			http.Error(w, "error, unsupported photo format", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save photo for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to save photo", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterPhotosUploaded.Inc()

	respJson, err := json.Marshal(UploadResponse{Ref: ref})
	if err != nil {
		log.Errorf("failed to marshal photo upload response: %s", err)
		http.Error(w, "error, failed to save photo", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) photoStoreErr(w http.ResponseWriter, ref string, err error) {
	switch {
	case errors.Is(err, ErrForeignPhotoRef):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidPhotoRef):
		http.Error(w, "error, invalid photo reference", http.StatusBadRequest)
	case errors.Is(err, ErrPhotoNotFound):
		http.Error(w, "error, photo not found", http.StatusNotFound)
	default:
		log.Errorf("photo [%s]: %s", ref, err)
		http.Error(w, "error, photo store failure", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.get")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	ref := vars["user"] + "/" + vars["file"]

	f, err := handler.store.Open(ctx, userID, ref)
	if err != nil {
		handler.photoStoreErr(w, ref, err)
		return
	}
	defer f.Close()

	modTime := time.Time{}
	if info, err := f.Stat(); err == nil {
		modTime = info.ModTime()
	}

	w.Header().Set("Content-Type", ContentType(ref))
	http.ServeContent(w, r, vars["file"], modTime, f)
}

// HandleDelete removes a photo of the current user. Body metrics still referring
// to it answer 404 when the photo is fetched.
func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.delete")
	defer span.End()

	userID, err := handler.identity.CurrentUserID(ctx)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	ref := vars["user"] + "/" + vars["file"]
	if err := handler.store.Delete(ctx, userID, ref); err != nil {
		handler.photoStoreErr(w, ref, err)
		return
	}

	log.Debugf("photo [%s] deleted by user [%s]", ref, userID)
	w.WriteHeader(http.StatusNoContent)
}
