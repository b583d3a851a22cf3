package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trip-route-service/internal/adapters/bikeshare"
	sqlcache "trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/directions"
	"trip-route-service/internal/adapters/elevation"
	"trip-route-service/internal/adapters/poi"
	"trip-route-service/internal/adapters/transit"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/cache"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (OSRM, Overpass, CityBikes, Open-Elevation)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmURL := config.Get("OSRM_URL", "https://router.project-osrm.org")
	overpassURL := config.Get("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	cityBikesURL := config.Get("CITYBIKES_URL", "https://api.citybik.es/v2")
	elevationURL := config.Get("ELEVATION_URL", "https://api.open-elevation.com/api/v1/lookup")

	// The Postgres leg cache is optional; without DATABASE_URL every
	// directions call goes straight to the routing engine.
	var legCache *sqlcache.SQLDirectionsCache
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		legCache = sqlcache.NewSQLDirectionsCache(pg)
	} else {
		log.Println("DATABASE_URL not set; directions leg cache disabled")
	}

	planner := &services.Planner{
		Directions: directions.NewOSRMProvider(osrmURL, legCache),
		Stops:      transit.NewOverpassStopFinder(overpassURL, 10*time.Second),
		Bikes:      bikeshare.NewCityBikesDirectory(cityBikesURL),
	}

	elevationEnricher := &services.ElevationEnricher{
		Provider: elevation.NewOpenElevationClient(elevationURL),
	}
	poiEnricher := &services.POIEnricher{
		Provider: poi.NewOverpassPOIClient(overpassURL, 10*time.Second),
		Cache:    cache.NewTTL[[]domain.PointOfInterest](5 * time.Minute),
		Limiter:  cache.NewCooldown(2 * time.Second),
	}

	router := api.NewRouter(planner, elevationEnricher, poiEnricher)

	// Timeouts are tuned for fan-out calls to external providers.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
