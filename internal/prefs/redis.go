package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const (
	favoritesKeyPrefix = "chateau:favoritos:"
	selectionKeyPrefix = "chateau:loja:"
)

type RedisFavorites struct {
	client *redis.Client
}

func NewRedisFavorites(client *redis.Client) *RedisFavorites {
	return &RedisFavorites{client: client}
}

func favoritesKey(clientKey string) string {
	return favoritesKeyPrefix + clientKey
}

func (r *RedisFavorites) List(ctx context.Context, clientKey string) ([]uint, error) {
	members, err := r.client.SMembers(ctx, favoritesKey(clientKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("favoritos: %w", err)
	}

	ids := []uint{}
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (r *RedisFavorites) Add(ctx context.Context, clientKey string, productID uint) error {
	return r.client.SAdd(ctx, favoritesKey(clientKey), productID).Err()
}

func (r *RedisFavorites) Remove(ctx context.Context, clientKey string, productID uint) error {
	return r.client.SRem(ctx, favoritesKey(clientKey), productID).Err()
}

func (r *RedisFavorites) Contains(ctx context.Context, clientKey string, productID uint) (bool, error) {
	return r.client.SIsMember(ctx, favoritesKey(clientKey), productID).Result()
}

type RedisSelection struct {
	client *redis.Client
}

func NewRedisSelection(client *redis.Client) *RedisSelection {
	return &RedisSelection{client: client}
}

func (r *RedisSelection) Get(ctx context.Context, clientKey string) (SelectedStore, error) {
	raw, err := r.client.Get(ctx, selectionKeyPrefix+clientKey).Result()
	if err == redis.Nil {
		return SelectedStore{}, ErrNotFound
	}
	if err != nil {
		return SelectedStore{}, fmt.Errorf("loja selecionada: %w", err)
	}

	var sel SelectedStore
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return SelectedStore{}, ErrNotFound
	}
	return sel, nil
}

func (r *RedisSelection) Set(ctx context.Context, clientKey string, store SelectedStore) error {
	raw, err := json.Marshal(store)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, selectionKeyPrefix+clientKey, raw, 0).Err()
}
