package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/travelbook/internal/models"
)

// Cache stores synthesized search results per normalized request. Since
// synthesis is randomized, caching is what keeps results stable when the
// same search is replayed within the TTL.
type Cache interface {
	GetFlights(ctx context.Context, req *models.SearchData) ([]models.Flight, bool)
	SetFlights(ctx context.Context, req *models.SearchData, flights []models.Flight) error
	GetHotels(ctx context.Context, req *models.SearchData) ([]models.Hotel, bool)
	SetHotels(ctx context.Context, req *models.SearchData, hotels []models.Hotel) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) GetFlights(ctx context.Context, req *models.SearchData) ([]models.Flight, bool) {
	data, err := c.client.Get(ctx, generateKey("flights", req)).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []models.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}

	return flights, true
}

func (c *RedisCache) SetFlights(ctx context.Context, req *models.SearchData, flights []models.Flight) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey("flights", req), data, c.ttl).Err()
}

func (c *RedisCache) GetHotels(ctx context.Context, req *models.SearchData) ([]models.Hotel, bool) {
	data, err := c.client.Get(ctx, generateKey("hotels", req)).Bytes()
	if err != nil {
		return nil, false
	}

	var hotels []models.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, false
	}

	return hotels, true
}

func (c *RedisCache) SetHotels(ctx context.Context, req *models.SearchData, hotels []models.Hotel) error {
	data, err := json.Marshal(hotels)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey("hotels", req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetFlights(context.Context, *models.SearchData) ([]models.Flight, bool) {
	return nil, false
}

func (c *NoOpCache) SetFlights(context.Context, *models.SearchData, []models.Flight) error {
	return nil
}

func (c *NoOpCache) GetHotels(context.Context, *models.SearchData) ([]models.Hotel, bool) {
	return nil, false
}

func (c *NoOpCache) SetHotels(context.Context, *models.SearchData, []models.Hotel) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the fields that determine a search's result set.
// Flexibility modifiers do not change the offers, so they stay out.
func generateKey(kind string, req *models.SearchData) string {
	keyData := struct {
		SearchType  string
		Location    string
		Destination string
		CheckIn     string
		CheckOut    string
		Passengers  int
	}{
		SearchType:  req.SearchType,
		Location:    req.Location,
		Destination: req.Destination,
		CheckIn:     req.CheckIn.Format("2006-01-02"),
		CheckOut:    req.CheckOut.Format("2006-01-02"),
		Passengers:  req.Passengers.Total,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return kind + ":" + hex.EncodeToString(hash[:])
}
