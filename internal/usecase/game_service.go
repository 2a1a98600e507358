package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/priceguesser/backend/internal/domain"
	"github.com/priceguesser/backend/internal/infrastructure/ikea"
)

// searchTerms is the static vocabulary the daily shuffle draws from.
// Broad everyday categories so a day's five products span the catalog.
var searchTerms = []string{
	"lamp", "chair", "table", "shelf", "sofa", "bed", "desk", "mirror",
	"rug", "curtain", "plant", "vase", "clock", "frame", "basket",
	"storage", "box", "hook", "candle", "cushion", "blanket", "towel",
	"pan", "pot", "plate", "bowl", "glass", "mug", "knife", "cutting",
	"trash", "bin", "organizer", "drawer", "rack", "stand", "stool",
	"bookcase", "wardrobe", "dresser", "nightstand", "cabinet", "trolley",
	"outdoor", "garden", "kids", "baby", "toy", "game", "office", "bathroom",
}

// GameServiceConfig holds configuration for the game service
type GameServiceConfig struct {
	Rounds   int
	MinPrice float64
	MaxPrice float64
}

// GameService resolves daily and random product sets from the retailer
// catalog. The resolution itself is stateless; resolved daily sets are
// cached per (date, country) until local midnight.
type GameService struct {
	cache    domain.CacheRepository
	catalog  domain.CatalogClient
	rounds   int
	minPrice float64
	maxPrice float64
}

// NewGameService creates a new game service with dependencies
func NewGameService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	config GameServiceConfig,
) *GameService {
	rounds := config.Rounds
	if rounds <= 0 {
		rounds = domain.RoundsPerDay
	}
	minPrice := config.MinPrice
	if minPrice <= 0 {
		minPrice = 1
	}
	maxPrice := config.MaxPrice
	if maxPrice <= 0 {
		maxPrice = 2000
	}

	return &GameService{
		cache:    cache,
		catalog:  catalog,
		rounds:   rounds,
		minPrice: minPrice,
		maxPrice: maxPrice,
	}
}

// DailySet returns the deterministic product set for a calendar day and
// country. Flow: check cache -> resolve from catalog -> cache -> return.
// Re-invoking after an error is idempotent given the same day.
func (s *GameService) DailySet(ctx context.Context, day time.Time, country string) (*domain.DailySet, error) {
	market := GetMarketConfig(country)
	dateKey := DateKey(day)
	cacheKey := fmt.Sprintf("daily:%s:%s", dateKey, market.Country)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if set, ok := cached.(*domain.DailySet); ok {
			return set, nil
		}
	}

	seed := DateSeed(SeedKey(day))
	products, err := s.resolveProducts(ctx, seed, market)
	if err != nil {
		return nil, err
	}

	set := &domain.DailySet{
		Date:     dateKey,
		Country:  market.Country,
		Products: products,
	}

	if err := s.cache.Set(ctx, cacheKey, set, untilEndOfDay(day)); err != nil {
		log.Printf("[GAME] failed to cache daily set %s: %v", cacheKey, err)
	}

	return set, nil
}

// resolveProducts walks the seed-shuffled vocabulary and collects one
// product per successful term until the set is full. A term whose fetch
// fails, or which yields no usable candidates, is skipped without retry.
func (s *GameService) resolveProducts(ctx context.Context, seed uint32, market MarketConfig) ([]domain.Product, error) {
	shuffledTerms := Shuffle(searchTerms, NewRand(seed))

	products := make([]domain.Product, 0, s.rounds)
	usedIDs := make(map[string]bool)

	for _, term := range shuffledTerms {
		if len(products) >= s.rounds {
			break
		}

		resp, err := s.catalog.Search(ctx, term, market.Country, market.Language)
		if err != nil {
			log.Printf("[GAME] search failed for term %q: %v", term, err)
			continue
		}

		valid := s.validCandidates(resp, usedIDs)
		if len(valid) == 0 {
			continue
		}

		// The pick sub-seed is offset by the accepted count, not the
		// term's position; existing deployments derive it this way and
		// day-to-day parity depends on it.
		picked := Shuffle(valid, NewRand(seed+uint32(len(products))))[0]
		picked.Price.Currency = market.Currency

		usedIDs[picked.ID] = true
		products = append(products, picked)
	}

	if len(products) < s.rounds {
		return nil, fmt.Errorf("%w: only found %d products, need %d",
			domain.ErrInsufficientProducts, len(products), s.rounds)
	}

	return products, nil
}

// validCandidates maps raw items to products and drops anything
// unusable: parse failures, range prices, prices outside the playable
// band, and ids already selected earlier in the pass.
func (s *GameService) validCandidates(resp *domain.SearchResponse, usedIDs map[string]bool) []domain.Product {
	var valid []domain.Product
	for _, item := range resp.Items() {
		p := ikea.MapToProduct(item)
		if p == nil {
			continue
		}
		if p.Price.IsRange || p.Price.CurrentPrice < s.minPrice || p.Price.CurrentPrice > s.maxPrice {
			continue
		}
		if usedIDs[p.ID] {
			continue
		}
		valid = append(valid, *p)
	}
	return valid
}

// RandomProduct returns one product picked with plain randomness, for
// the non-daily variant. No determinism contract applies here.
func (s *GameService) RandomProduct(ctx context.Context, country string) (*domain.Product, error) {
	market := GetMarketConfig(country)

	// Walk terms in random order until one yields a usable candidate
	order := rand.Perm(len(searchTerms))
	for _, idx := range order {
		term := searchTerms[idx]

		resp, err := s.catalog.Search(ctx, term, market.Country, market.Language)
		if err != nil {
			log.Printf("[GAME] search failed for term %q: %v", term, err)
			continue
		}

		valid := s.validCandidates(resp, nil)
		if len(valid) == 0 {
			continue
		}

		picked := valid[rand.Intn(len(valid))]
		picked.Price.Currency = market.Currency
		return &picked, nil
	}

	return nil, domain.ErrNoProductFound
}

// RandomTerm returns a random vocabulary entry, used by the search proxy
// when the caller supplies no query
func RandomTerm() string {
	return searchTerms[rand.Intn(len(searchTerms))]
}

// untilEndOfDay returns the time left until local midnight after day.
// Requests for historic dates get a short flat TTL instead.
func untilEndOfDay(day time.Time) time.Duration {
	next := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
	ttl := time.Until(next)
	if ttl <= 0 {
		ttl = time.Hour
	}
	return ttl
}
