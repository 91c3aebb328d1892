package describe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dharmasatrya/travelbook/internal/ratelimit"
)

const (
	defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"
	limiterSource  = "wikipedia"

	// Extracts shorter than this are treated as misses and replaced by
	// the generated description.
	minDescriptionLen = 100
)

var citationRe = regexp.MustCompile(`\[.*?\]`)
var whitespaceRe = regexp.MustCompile(`\s+`)

// WikipediaProvider fetches page-summary extracts from the Wikipedia
// REST API, falling back to the generated description when the lookup
// misses or the extract is too short. Results go through the injected
// cache so each hotel is fetched at most once.
type WikipediaProvider struct {
	baseURL string
	hc      *http.Client
	cache   Cache
	limiter *ratelimit.SourceLimiter
}

type WikipediaOption func(*WikipediaProvider)

func WithBaseURL(baseURL string) WikipediaOption {
	return func(p *WikipediaProvider) { p.baseURL = baseURL }
}

func WithHTTPClient(hc *http.Client) WikipediaOption {
	return func(p *WikipediaProvider) { p.hc = hc }
}

func WithCache(c Cache) WikipediaOption {
	return func(p *WikipediaProvider) { p.cache = c }
}

func WithLimiter(l *ratelimit.SourceLimiter) WikipediaOption {
	return func(p *WikipediaProvider) { p.limiter = l }
}

func NewWikipediaProvider(opts ...WikipediaOption) *WikipediaProvider {
	p := &WikipediaProvider{
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: 5 * time.Second},
		cache:   NewMemoryCache(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

func (p *WikipediaProvider) fetchSummary(ctx context.Context, title string) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, limiterSource); err != nil {
			return "", err
		}
	}

	reqURL := p.baseURL + "/page/summary/" + url.PathEscape(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia summary %q: status %d", title, resp.StatusCode)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", fmt.Errorf("decode wikipedia summary: %w", err)
	}

	return summary.Extract, nil
}

// clean strips citation markers and normalizes whitespace.
func clean(s string) string {
	s = citationRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func (p *WikipediaProvider) Describe(ctx context.Context, hotel HotelInfo) (string, error) {
	key := cacheKey(hotel)
	if cached, ok := p.cache.Get(key); ok {
		return cached, nil
	}

	extract, err := p.fetchSummary(ctx, hotel.Name+" "+hotel.Location)
	if err != nil || len(extract) <= 50 {
		// Retry with the bare hotel name before giving up.
		extract, err = p.fetchSummary(ctx, hotel.Name)
	}

	description := ""
	if err == nil {
		description = clean(extract)
	}
	if len(description) < minDescriptionLen {
		description = Generate(hotel)
	}

	p.cache.Set(key, description)
	return description, nil
}

// DescribeAll fetches descriptions for a batch of hotels, keyed the same
// way as the cache. Individual failures degrade to the generated text,
// never to an error.
func (p *WikipediaProvider) DescribeAll(ctx context.Context, hotels []HotelInfo) map[string]string {
	descriptions := make(map[string]string, len(hotels))
	for _, hotel := range hotels {
		description, err := p.Describe(ctx, hotel)
		if err != nil {
			description = Generate(hotel)
		}
		descriptions[cacheKey(hotel)] = description
	}
	return descriptions
}
