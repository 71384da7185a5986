package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrUnsupportedFormat   = errors.New("unsupported photo format")
	ErrInvalidPhotoRef     = errors.New("invalid photo reference")
	ErrForeignPhotoRef     = errors.New("photo belongs to another user")
	ErrInvalidPhotoOwnerID = errors.New("invalid photo owner id")
)

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// DiskStore keeps progress photos under <root>/<userID>/<uuid><ext>.
// A photo reference is the path relative to root.
type DiskStore struct {
	rootPath string
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("photos root path cannot be empty")
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("stat photos root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("photos root [%s] is not a directory", rootPath)
	}
	return &DiskStore{rootPath: rootPath}, nil
}

// ContentType returns the content type for the photo ref extension, or empty if not supported.
func ContentType(ref string) string {
	return allowedExtensions[strings.ToLower(filepath.Ext(ref))]
}

func (s *DiskStore) Save(ctx context.Context, userID, filename string, photo io.Reader) (ref string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !validOwnerID(userID) {
		return "", ErrInvalidPhotoOwnerID
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: [%s]", ErrUnsupportedFormat, ext)
	}

	userDir := filepath.Join(s.rootPath, userID)
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		return "", fmt.Errorf("create user photos dir: %w", err)
	}

	name := uuid.NewString() + ext
	span.SetAttributes(attribute.String("photo.name", name))

	dst, err := os.Create(filepath.Join(userDir, name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, photo)
	if err != nil {
		if rmErr := os.Remove(dst.Name()); rmErr != nil {
			log.Errorf("remove partially written photo [%s]: %s", dst.Name(), rmErr)
		}
		return "", fmt.Errorf("write photo: %w", err)
	}

	log.Debugf("photo saved for user [%s]: %s (%d bytes)", userID, name, written)

	return userID + "/" + name, nil
}

// Open returns the photo behind ref. Only the owner can open it.
func (s *DiskStore) Open(ctx context.Context, userID, ref string) (f *os.File, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	owner, name, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrForeignPhotoRef
	}

	f, err = os.Open(filepath.Join(s.rootPath, owner, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("open photo: %w", err)
	}
	return f, nil
}

func (s *DiskStore) Delete(ctx context.Context, userID, ref string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	owner, name, err := ParseRef(ref)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrForeignPhotoRef
	}

	if err := os.Remove(filepath.Join(s.rootPath, owner, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

// ParseRef splits a photo reference into owner and file name,
// rejecting anything that could escape the owner directory.
func ParseRef(ref string) (owner, name string, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 {
		return "", "", ErrInvalidPhotoRef
	}
	owner, name = parts[0], parts[1]
	if !validOwnerID(owner) || !validName(name) {
		return "", "", ErrInvalidPhotoRef
	}
	if ContentType(name) == "" {
		return "", "", ErrInvalidPhotoRef
	}
	return owner, name, nil
}

func validOwnerID(id string) bool {
	return validName(id)
}

func validName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`) && !strings.Contains(s, "..")
}
