package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"fincalc/domain"
	"fincalc/logging"
	"fincalc/repository"
)

type FundService struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewFundService creates a FundService; cache may be nil.
func NewFundService(cache repository.CacheRepository, ttl time.Duration) *FundService {
	return &FundService{cache: cache, ttl: ttl}
}

// ProjectForm validates the raw fields and returns every projection.
func (s *FundService) ProjectForm(form domain.FundForm) (domain.FundYieldResult, error) {
	params, err := ParseFundForm(form)
	if err != nil {
		return domain.FundYieldResult{}, err
	}
	return s.Project(params)
}

// Project returns the unrounded projections for params.
func (s *FundService) Project(params domain.FundParameters) (domain.FundYieldResult, error) {
	if params.Term > MaxPeriods {
		return domain.FundYieldResult{}, fmt.Errorf("%w: at most %d", ErrTooManyPeriods, MaxPeriods)
	}

	key := fundCacheKeyPrefix + formatFloat(params.InvestmentAmount) + ":" +
		strconv.Itoa(params.Term) + ":" + formatFloat(params.AnnualRate)

	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.FundYieldResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err := ProjectFund(params)
	if err != nil {
		return domain.FundYieldResult{}, err
	}

	if s.cache != nil {
		data, err := json.Marshal(result)
		if err != nil {
			logging.Warnf("failed to encode fund projection for cache: %v", err)
			return result, nil
		}
		if err := s.cache.Set(key, string(data), s.ttl); err != nil {
			logging.Warnf("failed to cache fund projection: %v", err)
		}
	}
	return result, nil
}
