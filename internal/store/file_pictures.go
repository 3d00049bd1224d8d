package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reut-b/profile-site/internal/logger"
)

// ErrInvalidFileName is returned when a stored-picture name contains path
// separators or otherwise does not look like a bare filename.
var ErrInvalidFileName = errors.New("invalid picture file name")

// picturesStorage persists uploaded profile pictures as plain files in a
// single local directory. File names are assigned by the service layer and
// must be bare names without path components.
type picturesStorage struct {
	dir    string
	logger *logger.Logger
}

// NewPicturesStorage constructs a [PicturesStorage] rooted at dir, creating
// the directory if it does not exist yet.
func NewPicturesStorage(dir string, logger *logger.Logger) (PicturesStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewPicturesStorage").Str("dir", dir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("PicturesStorage created")
	return &picturesStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes src to a new file named fileName inside the uploads directory.
// An existing file with the same name is overwritten; the naming scheme makes
// collisions between different signups practically impossible.
func (p *picturesStorage) Save(ctx context.Context, fileName string, src io.Reader) error {
	if filepath.Base(fileName) != fileName {
		return ErrInvalidFileName
	}

	dst, err := os.Create(filepath.Join(p.dir, fileName))
	if err != nil {
		p.logger.Err(err).Str("func", "*picturesStorage.Save").Str("file", fileName).Msg("error creating picture file")
		return fmt.Errorf("error creating picture file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		p.logger.Err(err).Str("func", "*picturesStorage.Save").Str("file", fileName).Msg("error writing picture file")
		return fmt.Errorf("error writing picture file: %w", err)
	}

	return nil
}

// Path resolves a stored file name to its on-disk path for serving.
// Names with path components are rejected so a crafted filename can never
// escape the uploads directory.
func (p *picturesStorage) Path(fileName string) (string, error) {
	if filepath.Base(fileName) != fileName {
		return "", ErrInvalidFileName
	}

	return filepath.Join(p.dir, fileName), nil
}
