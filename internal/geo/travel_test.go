package geo

import (
	"math"
	"testing"
	"time"
)

func TestHaversineKm(t *testing.T) {
	// San Francisco -> Los Angeles, ~559 km em linha reta
	got := HaversineKm(37.7749, -122.4194, 34.0522, -118.2437)
	if math.Abs(got-559) > 5 {
		t.Fatalf("SF->LA = %v km, want ~559", got)
	}

	if HaversineKm(37.7749, -122.4194, 37.7749, -122.4194) != 0 {
		t.Fatalf("distance to self must be 0")
	}
}

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		km    float64
		speed float64
		want  int
	}{
		{40, 40, 60},
		{20, 40, 30},
		{1, 40, 2}, // 1.5min arredonda para cima
		{10, 0, 0}, // velocidade inválida não divide por zero
	}

	for _, tt := range tests {
		if got := EstimateMinutes(tt.km, tt.speed); got != tt.want {
			t.Fatalf("EstimateMinutes(%v, %v) = %d, want %d", tt.km, tt.speed, got, tt.want)
		}
	}
}

func TestCacheKey_RoundsAndBuckets(t *testing.T) {
	dep := time.Date(2025, 1, 6, 18, 30, 0, 0, time.UTC) // segunda, 18h

	key := CacheKey(37.77491, -122.41941, 34.05221, -118.24371, dep)
	want := "travel:37.775,-122.419:34.052,-118.244:h18:d1"
	if key != want {
		t.Fatalf("key = %s, want %s", key, want)
	}

	// mesma vizinhança de ~100m cai na mesma chave
	near := CacheKey(37.77495, -122.41938, 34.05218, -118.24373, dep)
	if near != key {
		t.Fatalf("nearby coordinates must share the key: %s != %s", near, key)
	}

	// hora diferente muda o bucket
	later := CacheKey(37.77491, -122.41941, 34.05221, -118.24371, dep.Add(2*time.Hour))
	if later == key {
		t.Fatalf("different departure hour must change the key")
	}
}
