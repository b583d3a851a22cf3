package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/cache"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

const (
	// Padding added around the path's bounding box, in degrees.
	bboxBufferDeg = 0.002
	// Largest span a query box may cover on either axis. Raw boxes above
	// this are not clamped but skipped outright.
	bboxMaxSpanDeg = 0.02

	poiCooldownKey     = "overpass-poi"
	poiCategoryStagger = 100 * time.Millisecond
	poiCategoryTimeout = 10 * time.Second
	poiRetryDelay      = time.Second
)

// POIEnricher finds points of interest around a route path. Results are
// cached per bounding box, and live queries sit behind a cooldown so a
// burst of routes cannot hammer the point-data service.
//
// Enrichment is best effort: every failure degrades to an empty result,
// never an error.
type POIEnricher struct {
	Provider ports.POIProvider
	Cache    *cache.TTL[[]domain.PointOfInterest]
	Limiter  *cache.Cooldown
}

// Enrich returns the points of interest near path, deduplicated across
// categories.
func (e *POIEnricher) Enrich(ctx context.Context, path []domain.Coordinate) []domain.PointOfInterest {
	var err error
	defer obs.Time(ctx, "poi.Enrich")(&err)

	if len(path) == 0 {
		return nil
	}

	minLat, minLon, maxLat, maxLon := pathBounds(path)
	bbox := queryBBox(minLat, minLon, maxLat, maxLon)

	if cached, ok := e.Cache.Get(bbox); ok {
		return cached
	}

	if maxLat-minLat > bboxMaxSpanDeg || maxLon-minLon > bboxMaxSpanDeg {
		err = fmt.Errorf("span %.4f x %.4f deg: %w", maxLat-minLat, maxLon-minLon, ports.ErrBoundingBoxTooLarge)
		log.Printf("poi enrichment skipped: %v", err)
		return nil
	}

	if !e.Limiter.Allow(poiCooldownKey) {
		err = ports.ErrRateLimited
		log.Printf("poi enrichment skipped: %v", err)
		return nil
	}

	categories := domain.POICategories()
	results := make([][]domain.PointOfInterest, len(categories))

	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func(i int, category domain.POICategory) {
			defer wg.Done()

			pois, err := e.fetchCategory(ctx, bbox, category, time.Duration(i+1)*poiCategoryStagger)
			if err != nil {
				log.Printf("poi category %s failed: %v", category, err)
				return
			}
			results[i] = pois
		}(i, category)
	}
	wg.Wait()

	merged := mergePOIs(results)
	e.Cache.Put(bbox, merged)
	return merged
}

// fetchCategory runs one category query after its stagger delay, with a
// per-query deadline and a single retry.
func (e *POIEnricher) fetchCategory(
	ctx context.Context,
	bbox string,
	category domain.POICategory,
	delay time.Duration,
) ([]domain.PointOfInterest, error) {
	// Staggered dispatch keeps the categories from landing on the
	// provider in the same instant.
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	pois, err := e.findWithTimeout(ctx, bbox, category)
	if err == nil {
		return pois, nil
	}

	select {
	case <-time.After(poiRetryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return e.findWithTimeout(ctx, bbox, category)
}

func (e *POIEnricher) findWithTimeout(
	ctx context.Context,
	bbox string,
	category domain.POICategory,
) ([]domain.PointOfInterest, error) {
	queryCtx, cancel := context.WithTimeout(ctx, poiCategoryTimeout)
	defer cancel()
	return e.Provider.FindCategory(queryCtx, bbox, category)
}

// mergePOIs flattens the per-category results in category order, dropping
// duplicate IDs.
func mergePOIs(results [][]domain.PointOfInterest) []domain.PointOfInterest {
	var merged []domain.PointOfInterest
	seen := make(map[string]struct{})

	for _, pois := range results {
		for _, poi := range pois {
			if _, ok := seen[poi.ID]; ok {
				continue
			}
			seen[poi.ID] = struct{}{}
			merged = append(merged, poi)
		}
	}
	return merged
}

func pathBounds(path []domain.Coordinate) (minLat, minLon, maxLat, maxLon float64) {
	minLat, maxLat = path[0].Lat, path[0].Lat
	minLon, maxLon = path[0].Lon, path[0].Lon

	for _, c := range path[1:] {
		minLat = min(minLat, c.Lat)
		maxLat = max(maxLat, c.Lat)
		minLon = min(minLon, c.Lon)
		maxLon = max(maxLon, c.Lon)
	}
	return minLat, minLon, maxLat, maxLon
}

// queryBBox widens the raw bounds by the buffer and clamps each axis to
// the maximum span around its center. The string doubles as the cache key.
func queryBBox(minLat, minLon, maxLat, maxLon float64) string {
	minLat, maxLat = bufferAndClamp(minLat, maxLat)
	minLon, maxLon = bufferAndClamp(minLon, maxLon)
	return fmt.Sprintf("%f,%f,%f,%f", minLat, minLon, maxLat, maxLon)
}

func bufferAndClamp(lo, hi float64) (float64, float64) {
	lo -= bboxBufferDeg
	hi += bboxBufferDeg

	if hi-lo > bboxMaxSpanDeg {
		center := (lo + hi) / 2
		lo = center - bboxMaxSpanDeg/2
		hi = center + bboxMaxSpanDeg/2
	}
	return lo, hi
}
