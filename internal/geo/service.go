package geo

import (
	"context"
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
)

// TravelService resolve tempo/distância entre dois pontos, com cache
// redis na frente da estimativa
type TravelService struct {
	cache *TravelCache
	vars  *dynvars.Service
}

func NewTravelService(cache *TravelCache, vars *dynvars.Service) *TravelService {
	return &TravelService{cache: cache, vars: vars}
}

func (s *TravelService) Travel(
	ctx context.Context,
	oLat, oLng, dLat, dLng float64,
	departure time.Time,
) (TravelEstimate, error) {

	key := CacheKey(oLat, oLng, dLat, dLng, departure)

	if s.cache != nil {
		if est, ok := s.cache.Get(ctx, key); ok {
			return *est, nil
		}
	}

	speed, err := s.vars.DefaultSpeedKmh(ctx)
	if err != nil {
		return TravelEstimate{}, err
	}

	km := HaversineKm(oLat, oLng, dLat, dLng)
	est := TravelEstimate{
		Minutes: EstimateMinutes(km, speed),
		Km:      km,
	}

	if s.cache != nil {
		if ttl, err := s.vars.TravelCacheTTL(ctx); err == nil {
			s.cache.Set(ctx, key, est, ttl)
		}
	}

	return est, nil
}
