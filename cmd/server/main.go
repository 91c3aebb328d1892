package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/travelbook/internal/cache"
	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/describe"
	"github.com/dharmasatrya/travelbook/internal/handler"
	"github.com/dharmasatrya/travelbook/internal/ratelimit"
	"github.com/dharmasatrya/travelbook/internal/store"
	"github.com/dharmasatrya/travelbook/internal/synth"
)

type Config struct {
	Port             string
	CacheEnabled     bool
	RedisHost        string
	RedisPort        string
	RedisTTL         time.Duration
	RandomSeed       int64
	WikiDescriptions bool
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	cat := catalog.New()
	log.Printf("Catalog loaded: %d locations, %d airlines", len(cat.Locations()), len(cat.Airlines()))

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Shared by both generators across concurrent requests.
	rng := synth.NewRand(seed)

	flightGen := synth.NewFlightGenerator(cat, rng)
	hotelGen := synth.NewHotelGenerator(cat, rng)

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		searchCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		searchCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	var descProvider describe.Provider
	if cfg.WikiDescriptions {
		rateLimiter := ratelimit.NewSourceLimiterWithDefaults()
		rateLimiter.SetSourceLimit("wikipedia", 5, 10)
		descProvider = describe.NewWikipediaProvider(
			describe.WithCache(describe.NewMemoryCache()),
			describe.WithLimiter(rateLimiter),
		)
		log.Println("Wikipedia description provider enabled")
	} else {
		descProvider = describe.NewStaticProvider()
	}

	sessionStore := store.New()

	searchHandler := handler.NewSearchHandler(flightGen, hotelGen, searchCache)
	bookingHandler := handler.NewBookingHandler(sessionStore)
	locationsHandler := handler.NewLocationsHandler(cat)
	descriptionHandler := handler.NewDescriptionHandler(cat, descProvider)

	api := e.Group("/api/v1")
	api.GET("/search", searchHandler.Search)
	api.GET("/hotels/:id/rooms", handler.Rooms)
	api.GET("/hotels/:id/description", descriptionHandler.Description)
	api.GET("/calendar", handler.Calendar)
	api.GET("/locations", locationsHandler.Locations)
	api.POST("/bookings", bookingHandler.CreateBooking)
	api.GET("/bookings", bookingHandler.ListBookings)
	api.GET("/points", bookingHandler.PointsBalance)
	api.POST("/points/redeem", bookingHandler.RedeemPoints)
	api.POST("/session/signin", bookingHandler.SignIn)
	api.POST("/session/signout", bookingHandler.SignOut)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		CacheEnabled:     getEnvBool("CACHE_ENABLED", false),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisTTL:         getEnvDuration("REDIS_TTL", 5*time.Minute),
		RandomSeed:       getEnvInt64("RANDOM_SEED", 0),
		WikiDescriptions: getEnvBool("WIKI_DESCRIPTIONS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
