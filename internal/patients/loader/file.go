package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	apperrors "patientcleaner/pkg/errors"
	"patientcleaner/pkg/logger"
	"patientcleaner/pkg/model"
)

type Source interface {
	Read(ctx context.Context) ([]model.RawPatient, error)
}

type FileLoader struct {
	path string
	out  io.Writer
	log  *logger.Logger
}

// NewFileLoader returns a loader for the JSON array stored at path. Notices
// about an unavailable source are written to out.
func NewFileLoader(path string, out io.Writer, log *logger.Logger) *FileLoader {
	return &FileLoader{
		path: path,
		out:  out,
		log:  log,
	}
}

func (l *FileLoader) Path() string {
	return l.path
}

func (l *FileLoader) Read(ctx context.Context) ([]model.RawPatient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, apperrors.SourceUnavailable(l.path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, apperrors.SourceUnavailable(l.path, err)
	}
	return records, nil
}

// Load is Read without failure: an absent or unreadable file yields an empty
// sequence after a console notice.
func (l *FileLoader) Load(ctx context.Context) []model.RawPatient {
	records, err := l.Read(ctx)
	if err == nil {
		l.log.Debug("Patient data loaded", "path", l.path, "records", len(records))
		return records
	}

	l.log.Warn("Patient data unavailable, continuing with no records",
		"path", l.path,
		"error", err,
	)

	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(l.out, "Error: File not found at %s\n", l.path)
	} else {
		fmt.Fprintf(l.out, "Error: Could not read patient data at %s: %v\n", l.path, errors.Unwrap(err))
	}
	return []model.RawPatient{}
}
