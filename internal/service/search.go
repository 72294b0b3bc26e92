package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartrecipes/backend/config"
	"github.com/smartrecipes/backend/internal/models"
	"github.com/smartrecipes/backend/internal/pagination"
	"github.com/smartrecipes/backend/internal/types"
)

// cachedRecipeLimit caps the offline recipe cache to the most recently
// accessed entries.
const cachedRecipeLimit = 100

// SearchService turns a user ingredient list plus a page of upstream search
// results into an ordered, annotated recipe page, and owns the per-session
// search state.
type SearchService struct {
	client         RecipeAPI
	sessions       ISessionStore
	db             *gorm.DB
	pageSize       int
	serverSideDiet bool
	fetchDetail    bool
	logger         *zap.Logger
}

// NewSearchService creates a new SearchService instance. db may be nil,
// which disables the offline recipe cache.
func NewSearchService(client RecipeAPI, sessions ISessionStore, db *gorm.DB, cfg config.SearchConfig, logger *zap.Logger) *SearchService {
	return &SearchService{
		client:         client,
		sessions:       sessions,
		db:             db,
		pageSize:       cfg.PageSize,
		serverSideDiet: cfg.ServerSideDiet,
		fetchDetail:    cfg.FetchDetail,
		logger:         logger,
	}
}

// Search starts a new search session from a raw comma-separated ingredient
// string and returns its first requested page.
func (s *SearchService) Search(ctx context.Context, sessionID, rawIngredients, diet string, page int) (*types.SearchPage, error) {
	provided := ParseIngredients(rawIngredients)
	if len(provided) == 0 {
		return nil, ErrNoIngredients
	}
	if page < 1 {
		page = 1
	}

	state := &types.SearchState{
		Ingredients: provided,
		Diet:        diet,
		CurrentPage: page,
		TotalPages:  1,
	}

	result, err := s.fetchPage(ctx, state)
	if err != nil {
		return nil, err
	}

	s.saveState(ctx, sessionID, state)
	if err := s.sessions.RecordSearch(ctx, sessionID, rawIngredients); err != nil {
		s.logger.Warn("failed to record search history", zap.Error(err))
	}

	return result, nil
}

// Navigate moves the session's active search one page in the given
// direction, clamped to the known page range, and refetches.
func (s *SearchService) Navigate(ctx context.Context, sessionID, direction string) (*types.SearchPage, error) {
	state, err := s.sessions.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.CurrentPage = pagination.Navigate(state.CurrentPage, state.TotalPages, pagination.Direction(direction))

	result, err := s.fetchPage(ctx, state)
	if err != nil {
		return nil, err
	}

	s.saveState(ctx, sessionID, state)
	return result, nil
}

// RecipeByID returns one recipe as a full card from the upstream detail
// endpoint. Successful fetches refresh the offline cache; upstream failures
// fall back to the cached copy when one exists.
func (s *SearchService) RecipeByID(ctx context.Context, sessionID string, id int64) (*types.RecipeCard, error) {
	var provided []string
	if state, err := s.sessions.State(ctx, sessionID); err == nil {
		provided = state.Ingredients
	}

	record, err := s.client.Detail(ctx, id)
	if err != nil {
		cached, cacheErr := s.cachedRecipe(id)
		if cacheErr != nil {
			return nil, err
		}
		s.logger.Info("serving recipe from offline cache", zap.Int64("recipe_id", id), zap.Error(err))
		record = cached
	} else {
		s.storeCachedRecipe(record)
	}

	card := AssembleCard(*record, nil, provided)
	return &card, nil
}

// RecentSearches returns the session's recent search terms, most recent
// first.
func (s *SearchService) RecentSearches(ctx context.Context, sessionID string) ([]string, error) {
	return s.sessions.RecentSearches(ctx, sessionID)
}

// fetchPage runs one upstream fetch for the state's current page, updates
// the state's pagination bookkeeping and assembles the result cards.
func (s *SearchService) fetchPage(ctx context.Context, state *types.SearchState) (*types.SearchPage, error) {
	offset := pagination.OffsetForPage(state.CurrentPage, s.pageSize)

	diet := ""
	if s.serverSideDiet {
		diet = state.Diet
	}

	resp, err := s.client.Search(ctx, state.Ingredients, diet, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	state.TotalPages = pagination.UpdateTotalPages(resp.TotalResults, s.pageSize, state.TotalPages)

	// Out-of-range requests are clamped, not rejected. When the reported
	// total pulls the page back into range, refetch so the results match
	// the page the response is labeled with.
	if clamped := pagination.Clamp(state.CurrentPage, state.TotalPages); clamped != state.CurrentPage {
		state.CurrentPage = clamped
		resp, err = s.client.Search(ctx, state.Ingredients, diet, s.pageSize, pagination.OffsetForPage(clamped, s.pageSize))
		if err != nil {
			return nil, err
		}
		state.TotalPages = pagination.UpdateTotalPages(resp.TotalResults, s.pageSize, state.TotalPages)
	}

	cards := make([]types.RecipeCard, 0, len(resp.Results))
	for _, record := range resp.Results {
		var detail *RecipeRecord
		if s.fetchDetail && needsDetail(record) {
			d, err := s.client.Detail(ctx, record.ID)
			if err != nil {
				// A recipe missing its supplementary payload still renders.
				s.logger.Warn("detail fetch failed", zap.Int64("recipe_id", record.ID), zap.Error(err))
			} else {
				detail = d
			}
		}
		cards = append(cards, AssembleCard(record, detail, state.Ingredients))
	}

	return &types.SearchPage{
		Recipes:     cards,
		CurrentPage: state.CurrentPage,
		TotalPages:  state.TotalPages,
	}, nil
}

// needsDetail reports whether the search summary lacks fields the detail
// payload could supply.
func needsDetail(record RecipeRecord) bool {
	return len(record.ExtendedIngredients) == 0 || record.Nutrition == nil
}

func (s *SearchService) saveState(ctx context.Context, sessionID string, state *types.SearchState) {
	if err := s.sessions.SaveState(ctx, sessionID, state); err != nil {
		s.logger.Warn("failed to save search state", zap.Error(err))
	}
}

func (s *SearchService) cachedRecipe(id int64) (*RecipeRecord, error) {
	if s.db == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var cached models.CachedRecipe
	if err := s.db.First(&cached, "id = ?", id).Error; err != nil {
		return nil, err
	}

	s.db.Model(&models.CachedRecipe{}).Where("id = ?", id).Update("last_accessed", time.Now())

	var record RecipeRecord
	if err := json.Unmarshal([]byte(cached.Payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *SearchService) storeCachedRecipe(record *RecipeRecord) {
	if s.db == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	now := time.Now()
	cached := models.CachedRecipe{
		ID:           record.ID,
		Title:        record.Title,
		ImageURL:     record.Image,
		Payload:      string(payload),
		CachedAt:     now,
		LastAccessed: now,
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&cached).Error; err != nil {
		s.logger.Warn("failed to cache recipe", zap.Int64("recipe_id", record.ID), zap.Error(err))
		return
	}

	// Prune beyond the retention limit, oldest access first.
	s.db.Exec(`DELETE FROM cached_recipes WHERE id NOT IN (
		SELECT id FROM cached_recipes ORDER BY last_accessed DESC LIMIT ?
	)`, cachedRecipeLimit)
}
