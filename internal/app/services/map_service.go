package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/filestorage"
	"github.com/yigit/jobtracker/internal/pkg/geocoder"
)

// mapFilePattern matches the names MapFilename produces
var mapFilePattern = regexp.MustCompile(`^map_[0-9]+\.png$`)

// MapProvider resolves addresses and renders map images
type MapProvider interface {
	Geocode(ctx context.Context, address string) (geocoder.Coordinates, error)
	StaticMap(ctx context.Context, coords geocoder.Coordinates) ([]byte, error)
}

// UserMap is a user profile with its rendered location map
type UserMap struct {
	User     *models.User
	Filename string
	URL      string
}

// MapService renders user location maps into file storage
type MapService struct {
	store   repositories.Store
	maps    MapProvider
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewMapService creates a new MapService
func NewMapService(store repositories.Store, maps MapProvider, storage filestorage.FileStorage, logger zerolog.Logger) *MapService {
	return &MapService{
		store:   store,
		maps:    maps,
		storage: storage,
		logger:  logger,
	}
}

// MapFilename is the stored map image name for a user
func MapFilename(userID int64) string {
	return fmt.Sprintf("map_%d.png", userID)
}

// ShowUserMap geocodes the user's address and saves the map image,
// replacing the previous one
func (s *MapService) ShowUserMap(ctx context.Context, userID int64) (*UserMap, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	coords, err := s.maps.Geocode(ctx, user.MapAddress())
	if err != nil {
		return nil, err
	}
	image, err := s.maps.StaticMap(ctx, coords)
	if err != nil {
		return nil, err
	}

	filename := MapFilename(userID)
	url, err := s.storage.Save(filename, image)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to store map image")
		return nil, fmt.Errorf("error saving map: %w", err)
	}

	return &UserMap{User: user, Filename: filename, URL: url}, nil
}

// Cleanup deletes a generated map image. Names other than map_<id>.png are
// refused. Every failure, including a missing file, is reported as
// apperrors.ErrFileDelete.
func (s *MapService) Cleanup(filename string) error {
	if !mapFilePattern.MatchString(filename) {
		s.logger.Warn().Str("filename", filename).Msg("Refusing to delete a file that is not a generated map")
		return fmt.Errorf("%w: %q is not a map image", apperrors.ErrFileDelete, filename)
	}

	err := s.storage.Delete(filename)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrFileDelete) {
		return err
	}
	return fmt.Errorf("%w: %v", apperrors.ErrFileDelete, err)
}
