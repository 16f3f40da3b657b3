package seeders

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"gearguard/internal/storage"
)

// Run наполняет пустые коллекции демо-данными. Непустые коллекции
// не трогаем: сидер безопасен при повторных запусках.
func Run(ctx context.Context, st storage.Storage, logger *zap.Logger) error {
	if err := seedCollection(ctx, st, storage.CollectionEquipment, equipmentData, logger); err != nil {
		return err
	}
	if err := seedCollection(ctx, st, storage.CollectionTechnicians, technicianData, logger); err != nil {
		return err
	}
	if err := seedCollection(ctx, st, storage.CollectionUsers, userData, logger); err != nil {
		return err
	}
	return nil
}

func seedCollection[T any](ctx context.Context, st storage.Storage, collection string, items []T, logger *zap.Logger) error {
	existing, err := st.Load(ctx, collection)
	if err != nil {
		return fmt.Errorf("сидер: не удалось прочитать коллекцию %q: %w", collection, err)
	}
	if len(existing) > 0 {
		logger.Debug("сидер: коллекция уже наполнена, пропускаем", zap.String("collection", collection))
		return nil
	}

	records := make([]json.RawMessage, 0, len(items))
	for i := range items {
		raw, err := json.Marshal(items[i])
		if err != nil {
			return fmt.Errorf("сидер: не удалось сериализовать запись коллекции %q: %w", collection, err)
		}
		records = append(records, raw)
	}

	if err := st.Save(ctx, collection, records); err != nil {
		return fmt.Errorf("сидер: не удалось записать коллекцию %q: %w", collection, err)
	}
	logger.Info("сидер: коллекция наполнена демо-данными",
		zap.String("collection", collection), zap.Int("count", len(records)))
	return nil
}
