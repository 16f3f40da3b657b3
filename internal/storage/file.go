package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage хранит каждую коллекцию в отдельном JSON-файле.
// Драйвер по умолчанию для локального однопользовательского запуска.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию хранилища: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStorage) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("не удалось прочитать коллекцию %q: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("повреждённая коллекция %q: %w", collection, err)
	}
	return records, nil
}

func (s *FileStorage) Save(_ context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// Запись через временный файл, чтобы не оставить коллекцию полузаписанной.
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("не удалось записать коллекцию %q: %w", collection, err)
	}
	return os.Rename(tmp, s.path(collection))
}
