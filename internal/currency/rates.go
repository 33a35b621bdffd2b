package currency

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mkorobeynikov/fintrack/pkg/clients"
	"github.com/mkorobeynikov/fintrack/pkg/metrics"
	"go.uber.org/zap"
)

const (
	cacheTTL        = time.Hour
	refreshInterval = time.Hour
)

type providerResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Service caches USD-relative exchange rates fetched from an external
// provider. Provider failures never surface to callers: the service degrades
// to the last cached snapshot, then to the built-in static table.
type Service struct {
	url    string
	client clients.HTTPClientI
	now    func() time.Time

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

func New(url string, client clients.HTTPClientI) *Service {
	return &Service{
		url:    url,
		client: client,
		now:    time.Now,
	}
}

// FetchRates returns the code->rate map, refreshing it when the cached
// snapshot is older than an hour. The provider round-trip happens outside
// the mutex so concurrent conversions never queue behind a slow fetch.
func (s *Service) FetchRates(ctx context.Context) map[string]float64 {
	s.mu.Lock()
	cached := s.rates
	stale := cached == nil || s.now().Sub(s.fetchedAt) >= cacheTTL
	s.mu.Unlock()

	if !stale {
		return cached
	}

	rates, err := s.fetch(ctx)
	if err != nil {
		zap.L().Warn("rates provider unavailable, using fallback", zap.Error(err))
		metrics.CountRatesFallback()
		if cached != nil {
			return cached
		}
		return staticRates
	}

	s.mu.Lock()
	s.rates = rates
	s.fetchedAt = s.now()
	s.mu.Unlock()
	return rates
}

func (s *Service) fetch(ctx context.Context) (map[string]float64, error) {
	statusCode, body, _, err := s.client.Get(s.url, nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, errors.New("unexpected status code from rates provider")
	}

	var resp providerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Rates) == 0 {
		return nil, errors.New("rates provider returned empty rate table")
	}
	return resp.Rates, nil
}

// Convert translates amount between two ISO-4217 codes. Same-code conversion
// is exact; unknown codes fall back to rate 1.0; the result is rounded
// half-up to cents.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) float64 {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amount
	}

	rates := s.FetchRates(ctx)
	fromRate, ok := rates[from]
	if !ok {
		fromRate = 1.0
	}
	toRate, ok := rates[to]
	if !ok {
		toRate = 1.0
	}

	// Half-up: .5 always rounds toward positive infinity, so -37.5 cents
	// becomes -37, not -38.
	return math.Floor(amount*(toRate/fromRate)*100+0.5) / 100
}

// Start runs a background cache warmer so requests rarely pay for the
// provider round-trip. Stops when ctx is canceled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("currency rates refresher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	s.FetchRates(ctx)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping rates refresher")
			return
		case <-ticker.C:
			s.FetchRates(ctx)
		}
	}
}
