package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smartrecipes/backend/config"
	"github.com/smartrecipes/backend/internal/nutrition"
)

// RecipeIngredientRecord is one ingredient line from an upstream recipe.
type RecipeIngredientRecord struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// NutritionRecord wraps the heterogeneous nutrient list of an upstream
// recipe payload.
type NutritionRecord struct {
	Nutrients []nutrition.Nutrient `json:"nutrients"`
}

// RecipeRecord is one recipe as reported by the upstream API, either as a
// search summary or as the richer detail payload. Optional fields stay at
// their zero value when the payload omits them.
type RecipeRecord struct {
	ID                  int64                    `json:"id"`
	Title               string                   `json:"title"`
	Image               string                   `json:"image"`
	ReadyInMinutes      int                      `json:"readyInMinutes"`
	Servings            int                      `json:"servings"`
	Vegetarian          bool                     `json:"vegetarian"`
	Vegan               bool                     `json:"vegan"`
	GlutenFree          bool                     `json:"glutenFree"`
	DairyFree           bool                     `json:"dairyFree"`
	ExtendedIngredients []RecipeIngredientRecord `json:"extendedIngredients"`
	Nutrition           *NutritionRecord         `json:"nutrition,omitempty"`
}

// SearchResponse is the upstream complexSearch payload.
type SearchResponse struct {
	Results      []RecipeRecord `json:"results"`
	Offset       int            `json:"offset"`
	Number       int            `json:"number"`
	TotalResults int            `json:"totalResults"`
}

// SpoonacularClient talks to the upstream recipe-search API. Responses are
// memoized in Redis for a bounded TTL keyed by the full query, purely as a
// speed optimization.
type SpoonacularClient struct {
	http     *resty.Client
	apiKey   string
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSpoonacularClient builds the upstream client. cache may be nil, which
// disables memoization.
func NewSpoonacularClient(cfg config.SpoonacularConfig, cache *redis.Client, logger *zap.Logger) *SpoonacularClient {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// GETs only, so retrying on transport errors and upstream 5xx is safe.
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &SpoonacularClient{
		http:     httpClient,
		apiKey:   cfg.APIKey,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// Search runs a complexSearch against the upstream with the given page
// window. diet is forwarded as-is when non-empty.
func (c *SpoonacularClient) Search(ctx context.Context, ingredients []string, diet string, number, offset int) (*SearchResponse, error) {
	cacheKey := fmt.Sprintf("spoonacular:search:%s|%s|%d|%d", strings.Join(ingredients, ","), diet, number, offset)

	var cached SearchResponse
	if c.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetQueryParam("includeIngredients", strings.Join(ingredients, ",")).
		SetQueryParam("number", strconv.Itoa(number)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("fillIngredients", "true").
		SetQueryParam("addRecipeNutrition", "true")
	if diet != "" {
		req.SetQueryParam("diet", diet)
	}

	resp, err := req.Get("/recipes/complexSearch")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, err
	}

	var out SearchResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}

	c.cacheSet(ctx, cacheKey, &out)
	return &out, nil
}

// Detail fetches the richer single-recipe payload used as the assembler's
// supplementary source.
func (c *SpoonacularClient) Detail(ctx context.Context, id int64) (*RecipeRecord, error) {
	cacheKey := fmt.Sprintf("spoonacular:detail:%d", id)

	var cached RecipeRecord
	if c.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetQueryParam("includeNutrition", "true").
		Get(fmt.Sprintf("/recipes/%d/information", id))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrRecipeNotFound
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, err
	}

	var out RecipeRecord
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}

	c.cacheSet(ctx, cacheKey, &out)
	return &out, nil
}

func (c *SpoonacularClient) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if c.cache == nil {
		return false
	}
	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

func (c *SpoonacularClient) cacheSet(ctx context.Context, key string, value interface{}) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache upstream response", zap.String("key", key), zap.Error(err))
	}
}

// classifyTransportError maps connection-level failures into the error
// taxonomy.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrNetworkTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
}

// classifyStatus maps upstream HTTP statuses into distinct failure kinds so
// the handler layer can show category-appropriate messages.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUpstreamAuth
	case status == http.StatusPaymentRequired:
		return ErrUpstreamQuota
	default:
		return fmt.Errorf("%w: status %d", ErrUpstreamFailure, status)
	}
}
