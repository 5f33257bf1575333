package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/oswinp/curiodb/internal/domain"
)

// FileRepository implements domain.ReportRepository using yaml sidecar files
type FileRepository struct {
	log zerolog.Logger
}

// NewFileRepository creates a new file-based repository
func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "repository").Logger(),
	}
}

var _ domain.ReportRepository = (*FileRepository)(nil)

// GetUnresolved reads a previously written unresolved-entries report
func (r *FileRepository) GetUnresolved(ctx context.Context, path string) (*domain.UnresolvedReport, error) {
	report := &domain.UnresolvedReport{}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file does not exist: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	err = yaml.Unmarshal(b, report)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return report, nil
}

// StoreUnresolved writes the unresolved-entries report of an import batch
func (r *FileRepository) StoreUnresolved(ctx context.Context, path string, report *domain.UnresolvedReport) error {
	b, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	_, err = f.Write(b)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.log.Debug().Str("path", path).Int("count", len(report.Entries)).Msg("stored unresolved report")
	return nil
}
