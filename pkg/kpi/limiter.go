package kpi

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-KPI rate limiters: kpi_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(kpiID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[kpiID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[kpiID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(kpiID string, kpiRate rate.Limit, kpiBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[kpiID] = rate.NewLimiter(kpiRate, kpiBurst)
}
