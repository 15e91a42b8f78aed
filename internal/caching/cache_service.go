package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stocktrail/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts the quantity store for hot reads: quantity pairs and
// warehouse capacity reports. Misses return (nil, nil). Errors here never
// fail business operations; callers log and fall through to the database.
type CacheService interface {
	GetWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error)
	SetWarehouseItem(ctx context.Context, wi *models.WarehouseItem, ttl time.Duration) error
	DeleteWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) error

	GetCapacity(ctx context.Context, warehouseID uuid.UUID) (*models.WarehouseCapacity, error)
	SetCapacity(ctx context.Context, capacity *models.WarehouseCapacity, ttl time.Duration) error
	DeleteCapacity(ctx context.Context, warehouseID uuid.UUID) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		slog.Warn("redis ping failed on initialization", "addr", parsedAddr, "error", pingErr)
	}

	return &redisCacheService{client: client}
}

func pairKey(warehouseID, itemID uuid.UUID) string {
	return fmt.Sprintf("stocktrail:pair:%s:%s", warehouseID.String(), itemID.String())
}

func capacityKey(warehouseID uuid.UUID) string {
	return fmt.Sprintf("stocktrail:capacity:%s", warehouseID.String())
}

func (r *redisCacheService) GetWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	data, err := r.client.Get(ctx, pairKey(warehouseID, itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var wi models.WarehouseItem
	if err := json.Unmarshal(data, &wi); err != nil {
		return nil, err
	}
	return &wi, nil
}

func (r *redisCacheService) SetWarehouseItem(ctx context.Context, wi *models.WarehouseItem, ttl time.Duration) error {
	data, err := json.Marshal(wi)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, pairKey(wi.WarehouseID, wi.ItemID), data, ttl).Err()
}

func (r *redisCacheService) DeleteWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) error {
	return r.client.Del(ctx, pairKey(warehouseID, itemID)).Err()
}

func (r *redisCacheService) GetCapacity(ctx context.Context, warehouseID uuid.UUID) (*models.WarehouseCapacity, error) {
	data, err := r.client.Get(ctx, capacityKey(warehouseID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var capacity models.WarehouseCapacity
	if err := json.Unmarshal(data, &capacity); err != nil {
		return nil, err
	}
	return &capacity, nil
}

func (r *redisCacheService) SetCapacity(ctx context.Context, capacity *models.WarehouseCapacity, ttl time.Duration) error {
	data, err := json.Marshal(capacity)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, capacityKey(capacity.WarehouseID), data, ttl).Err()
}

func (r *redisCacheService) DeleteCapacity(ctx context.Context, warehouseID uuid.UUID) error {
	return r.client.Del(ctx, capacityKey(warehouseID)).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
