package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gearguard/internal/storage"
)

// Каждый стор владеет своей коллекцией: упорядоченный срез в памяти,
// мутации синхронны и целиком сбрасываются во внешний носитель.
// Отказ записи пробрасывается вызывающему как фатальная ошибка операции;
// состояние в памяти и на носителе при этом может разойтись до следующего
// успешного сохранения (§5, §7 спецификации).

func loadRecords[T any](ctx context.Context, st storage.Storage, collection string) ([]T, error) {
	records, err := st.Load(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить коллекцию %q: %w", collection, err)
	}

	items := make([]T, 0, len(records))
	for _, rec := range records {
		var item T
		if err := json.Unmarshal(rec, &item); err != nil {
			return nil, fmt.Errorf("повреждённая запись в коллекции %q: %w", collection, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func saveRecords[T any](ctx context.Context, st storage.Storage, collection string, items []T) error {
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		records = append(records, data)
	}
	return st.Save(ctx, collection, records)
}
