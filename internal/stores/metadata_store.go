package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"log-report/internal/models"
	"log-report/internal/shared/filestorages"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrSnapshotNotFound  = errors.New("metadata snapshot not found")
	ErrUnsupportedFormat = errors.New("unsupported metadata format")
)

// MetadataStore persists the browser metadata snapshot of the latest run under a fixed
// key. Every Put replaces the previous snapshot.
//
//go:generate mockgen -source=metadata_store.go -destination=./mocks/metadata_store_mock.go -package=mocks
type MetadataStore interface {
	// Put writes snapshot and returns the path it was written to.
	Put(ctx context.Context, snapshot *models.MetadataSnapshot) (string, error)
	Get(ctx context.Context) (*models.MetadataSnapshot, error)
}

type metadataStore struct {
	fileStorage filestorages.FileStorage
	key         string
	format      string
}

func NewMetadataStore(fileStorage filestorages.FileStorage, fileName string, format string) (MetadataStore, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &metadataStore{fileStorage: fileStorage, key: fileName, format: format}, nil
}

func (s *metadataStore) Put(ctx context.Context, snapshot *models.MetadataSnapshot) (string, error) {
	data, err := s.marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata snapshot: %w", err)
	}
	result, err := s.fileStorage.Put(ctx, s.key, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to put metadata snapshot: %w", err)
	}
	return result.Path, nil
}

func (s *metadataStore) Get(ctx context.Context) (*models.MetadataSnapshot, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get metadata snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata snapshot: %w", err)
	}

	var snapshot models.MetadataSnapshot
	if s.format == FormatYAML {
		err = yaml.Unmarshal(data, &snapshot)
	} else {
		err = json.Unmarshal(data, &snapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *metadataStore) marshal(snapshot *models.MetadataSnapshot) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(snapshot)
	}
	return json.MarshalIndent(snapshot, "", "    ")
}

type nopMetadataStore struct{}

// NewNopMetadataStore returns a store that discards snapshots, used when the snapshot is disabled.
func NewNopMetadataStore() MetadataStore {
	return nopMetadataStore{}
}

func (nopMetadataStore) Put(ctx context.Context, snapshot *models.MetadataSnapshot) (string, error) {
	return "", nil
}

func (nopMetadataStore) Get(ctx context.Context) (*models.MetadataSnapshot, error) {
	return nil, ErrSnapshotNotFound
}
