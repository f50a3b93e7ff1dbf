package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Entrada memoizada de tempo de viagem
type TravelEstimate struct {
	Minutes int     `json:"minutes"`
	Km      float64 `json:"km"`
}

// CacheKey arredonda as coordenadas para ~100m (3 casas) e adiciona o
// bucket hora-do-dia + dia-da-semana da partida. Chave determinística:
// entradas velhas simplesmente expiram por TTL.
func CacheKey(oLat, oLng, dLat, dLng float64, departure time.Time) string {
	return fmt.Sprintf(
		"travel:%.3f,%.3f:%.3f,%.3f:h%02d:d%d",
		oLat, oLng, dLat, dLng,
		departure.Hour(), int(departure.Weekday()),
	)
}

type TravelCache struct {
	rdb *redis.Client
}

func NewTravelCache(rdb *redis.Client) *TravelCache {
	return &TravelCache{rdb: rdb}
}

func (c *TravelCache) Get(ctx context.Context, key string) (*TravelEstimate, bool) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var est TravelEstimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		return nil, false
	}
	return &est, true
}

func (c *TravelCache) Set(ctx context.Context, key string, est TravelEstimate, ttl time.Duration) {
	raw, err := json.Marshal(est)
	if err != nil {
		return
	}
	// cache é advisory: erro de redis não propaga
	c.rdb.Set(ctx, key, raw, ttl)
}
