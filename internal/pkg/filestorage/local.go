package filestorage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL the directory is served under
	logger   zerolog.Logger
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, baseURL string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
		logger:   logger,
	}, nil
}

// cleanName keeps only the base name so callers cannot escape basePath
func cleanName(name string) (string, error) {
	filename := filepath.Base(filepath.Clean("/" + name))
	if filename == "" || filename == "." || filename == "/" || filename == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	return filename, nil
}

// Save writes data to a temporary file and renames it over name, so readers
// never observe a partially written file.
func (ls *LocalStorage) Save(name string, data []byte) (string, error) {
	filename, err := cleanName(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(ls.basePath, "."+filename+".*")
	if err != nil {
		ls.logger.Error().Err(err).Str("path", ls.basePath).Msg("Failed to create temporary file")
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}

	dstPath := filepath.Join(ls.basePath, filename)
	if err := os.Rename(tmpPath, dstPath); err != nil {
		_ = os.Remove(tmpPath)
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to move file into place")
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	ls.logger.Debug().Str("path", dstPath).Int("bytes", len(data)).Msg("File saved successfully")
	return ls.URL(filename), nil
}

// URL returns the public URL of a stored file
func (ls *LocalStorage) URL(filename string) string {
	return strings.TrimRight(ls.baseURL, "/") + "/" + filename
}

// Delete removes a file from the storage directory. Only the base name of
// name is used. A missing file is reported as apperrors.ErrFileNotFound.
func (ls *LocalStorage) Delete(name string) error {
	filename, err := cleanName(name)
	if err != nil {
		return err
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ls.logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return apperrors.ErrFileNotFound
		}
		ls.logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("%w: %v", apperrors.ErrFileDelete, err)
	}

	ls.logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath returns the full filesystem path for a given file URL.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	filename, err := cleanName(fileURL)
	if err != nil {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
