package storage

import (
	"context"
	"encoding/json"
)

// Имена коллекций внешнего хранилища.
const (
	CollectionEquipment   = "equipment"
	CollectionRequests    = "requests"
	CollectionTechnicians = "technicians"
	CollectionUsers       = "users"
)

// Storage — порт персистентности: четыре независимые коллекции записей,
// каждая сохраняется и читается целиком. Сериализация — JSON, даты в ISO-8601.
type Storage interface {
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)
	Save(ctx context.Context, collection string, records []json.RawMessage) error
}
