package dynvars

import (
	"context"
	"encoding/json"
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// Store resolve uma variável vigente (janela effective + aprovação).
// Ausência de chave é erro duro: sem fallback hardcoded.
type Store interface {
	GetEffective(
		ctx context.Context,
		category string,
		key string,
		at time.Time,
	) (*models.DynamicVariable, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) raw(ctx context.Context, category, key string) (string, error) {
	v, err := s.store.GetEffective(ctx, category, key, time.Now())
	if err != nil || v == nil {
		return "", httperr.ErrBusiness(httperr.CodeConfigMissing)
	}
	return v.Value, nil
}

func (s *Service) Int(ctx context.Context, category, key string) (int, error) {
	raw, err := s.raw(ctx, category, key)
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeConfigMissing)
	}
	return n, nil
}

func (s *Service) Float(ctx context.Context, category, key string) (float64, error) {
	raw, err := s.raw(ctx, category, key)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeConfigMissing)
	}
	return f, nil
}

// ===============================
// Accessors tipados por chave (um por regra de negócio)
// ===============================

func (s *Service) SigningWindow(ctx context.Context) (time.Duration, error) {
	h, err := s.Int(ctx, "scheduling", "signing_window_hours")
	if err != nil {
		return 0, err
	}
	return time.Duration(h) * time.Hour, nil
}

func (s *Service) PaymentWindow(ctx context.Context) (time.Duration, error) {
	h, err := s.Int(ctx, "scheduling", "payment_window_hours")
	if err != nil {
		return 0, err
	}
	return time.Duration(h) * time.Hour, nil
}

func (s *Service) WarningLead(ctx context.Context) (time.Duration, error) {
	m, err := s.Int(ctx, "scheduling", "warning_lead_minutes")
	if err != nil {
		return 0, err
	}
	return time.Duration(m) * time.Minute, nil
}

func (s *Service) ChefAvailabilityWindowDays(ctx context.Context) (int, error) {
	return s.Int(ctx, "scheduling", "chef_availability_window_days")
}

func (s *Service) LongAdvanceSlotCapacity(ctx context.Context) (int, error) {
	return s.Int(ctx, "scheduling", "long_advance_slot_capacity")
}

func (s *Service) UrgentThresholdDays(ctx context.Context) (int, error) {
	return s.Int(ctx, "scheduling", "urgent_threshold_days")
}

func (s *Service) NegotiationExpiry(ctx context.Context) (time.Duration, error) {
	h, err := s.Int(ctx, "negotiation", "expiry_hours")
	if err != nil {
		return 0, err
	}
	return time.Duration(h) * time.Hour, nil
}

func (s *Service) TravelCacheTTL(ctx context.Context) (time.Duration, error) {
	d, err := s.Int(ctx, "travel", "cache_ttl_days")
	if err != nil {
		return 0, err
	}
	return time.Duration(d) * 24 * time.Hour, nil
}

func (s *Service) DefaultSpeedKmh(ctx context.Context) (float64, error) {
	return s.Float(ctx, "travel", "default_speed_kmh")
}
