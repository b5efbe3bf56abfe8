package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// snapshotKey ключ снимка каталога в Redis
const snapshotKey = "catalog:adventures:snapshot"

// Cache кеш снимка каталога в Redis
// Снимок переживает недоступность каталога: календарь и фильтр продолжают
// работать на последних известных данных
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache создает кеш снимка каталога
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// StoreSnapshot сохраняет снимок каталога
func (c *Cache) StoreSnapshot(ctx context.Context, adventures []domain.Adventure) error {
	payload, err := json.Marshal(adventures)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := c.rdb.Set(ctx, snapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot возвращает последний снимок каталога
// Если снимка нет или он истек - ErrCacheMiss
func (c *Cache) LoadSnapshot(ctx context.Context) ([]domain.Adventure, error) {
	payload, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var adventures []domain.Adventure
	if err := json.Unmarshal(payload, &adventures); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return adventures, nil
}
