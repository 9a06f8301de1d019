// Package stats runs the dashboard queries and shapes their rows into API responses.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"brasilnasteam/backend/internal/filters"
	"brasilnasteam/backend/internal/metric"
	"brasilnasteam/backend/internal/models"
	"brasilnasteam/backend/internal/query"
)

const (
	topGamesLimit = 5
	popularWindow = 6 // months
)

// Cache is the optional response cache.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Flush(ctx context.Context) (int, error)
}

// Querier runs rendered statements; *sqlx.DB satisfies it.
type Querier interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

type Options struct {
	Metrics     *metric.Registry
	ChartGenres []string
	MaxPerPage  int
	Cache       Cache
	Logger      *slog.Logger
	// WarnUnknownMetric logs requests naming a metric outside the catalog.
	WarnUnknownMetric bool
}

// Service answers the dashboard endpoints. The gorm handle serves the plain
// table reads; statements assembled by package query run through the querier,
// sqlx on the same pool in production.
type Service struct {
	db                *gorm.DB
	queries           Querier
	builder           *query.Builder
	metrics           *metric.Registry
	maxPerPage        int
	cache             Cache
	logger            *slog.Logger
	warnUnknownMetric bool
	now               func() time.Time
}

func NewService(db *gorm.DB, q Querier, opts Options) *Service {
	if opts.Metrics == nil {
		opts.Metrics = metric.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		db:                db,
		queries:           q,
		builder:           query.NewBuilder(opts.ChartGenres),
		metrics:           opts.Metrics,
		maxPerPage:        opts.MaxPerPage,
		cache:             opts.Cache,
		logger:            opts.Logger,
		warnUnknownMetric: opts.WarnUnknownMetric,
		now:               time.Now,
	}
}

// MetricNames lists the selectable metrics, default first.
func (s *Service) MetricNames() []string {
	return s.metrics.Names()
}

// resolveMetric falls back to the default metric for unknown or absent names.
func (s *Service) resolveMetric(ctx context.Context, name string) metric.Definition {
	if def, ok := s.metrics.Lookup(name); ok {
		return def
	}
	def := s.metrics.Default()
	if name != "" && s.warnUnknownMetric {
		s.logger.WarnContext(ctx, "unknown_metric", slog.String("metric", name), slog.String("fallback", def.Name))
	}
	return def
}

type chartRow struct {
	Category  sql.NullString  `db:"category"`
	GameCount int64           `db:"game_count"`
	Metric    sql.NullFloat64 `db:"metric"`
}

// Chart aggregates the games matching f per category of the chart dimension.
// The result is empty, never nil, when nothing matches.
func (s *Service) Chart(ctx context.Context, chart query.Chart, f filters.Filters) ([]ChartPoint, error) {
	m := s.resolveMetric(ctx, f.Metric)
	f.Metric = m.Name

	return cached(ctx, s, cacheKey("chart:"+string(chart), f), func() ([]ChartPoint, error) {
		st, err := s.builder.Aggregate(chart, f, m)
		if err != nil {
			return nil, err
		}
		var rows []chartRow
		if err := s.queries.SelectContext(ctx, &rows, st.SQL, st.Args...); err != nil {
			return nil, fmt.Errorf("query %s chart: %w", chart, err)
		}
		if chart == query.ChartPrices {
			return priceChartPoints(rows, m)
		}
		return chartPoints(rows, m), nil
	})
}

func chartPoints(rows []chartRow, m metric.Definition) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{
			Category:  row.Category.String,
			GameCount: row.GameCount,
			Metric:    m.Apply(row.Metric.Float64),
		})
	}
	return points
}

type searchRow struct {
	GameSearchData
	TotalCount int64 `db:"total_count"`
}

// Search returns one page of games matching p. PerPage is capped at the
// configured maximum; a page past the end is empty but keeps the total count.
func (s *Service) Search(ctx context.Context, p filters.Search) (SearchResult, error) {
	if s.maxPerPage > 0 && p.PerPage > s.maxPerPage {
		p.PerPage = s.maxPerPage
	}

	return cached(ctx, s, cacheKey("search", p), func() (SearchResult, error) {
		var rows []searchRow
		if p.PerPage > 0 {
			st, err := query.SearchPage(p)
			if err != nil {
				return SearchResult{}, err
			}
			if err := s.queries.SelectContext(ctx, &rows, st.SQL, st.Args...); err != nil {
				return SearchResult{}, fmt.Errorf("query search page: %w", err)
			}
		}

		result := SearchResult{Data: make([]GameSearchData, 0, len(rows))}
		for _, row := range rows {
			result.Data = append(result.Data, row.GameSearchData)
		}
		if len(rows) > 0 {
			result.TotalCount = rows[0].TotalCount
			return result, nil
		}
		if p.Page == 0 && p.PerPage > 0 {
			return result, nil
		}

		st, err := query.SearchCount(p)
		if err != nil {
			return SearchResult{}, err
		}
		if err := s.queries.GetContext(ctx, &result.TotalCount, st.SQL, st.Args...); err != nil {
			return SearchResult{}, fmt.Errorf("count search results: %w", err)
		}
		return result, nil
	})
}

// TopGames loads the three landing page lists concurrently.
func (s *Service) TopGames(ctx context.Context) (TopGames, error) {
	return cached(ctx, s, "top-games", func() (TopGames, error) {
		var top TopGames
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			st, err := query.PopularGames(s.now().AddDate(0, -popularWindow, 0), topGamesLimit)
			if err != nil {
				return err
			}
			top.Popular, err = s.selectTopGames(gctx, st)
			return err
		})
		g.Go(func() error {
			var err error
			top.Recent, err = s.recentGames(gctx, topGamesLimit)
			return err
		})
		g.Go(func() error {
			st, err := query.UpcomingGames(topGamesLimit)
			if err != nil {
				return err
			}
			top.Upcoming, err = s.selectTopGames(gctx, st)
			return err
		})
		if err := g.Wait(); err != nil {
			return TopGames{}, fmt.Errorf("load top games: %w", err)
		}
		return top, nil
	})
}

func (s *Service) selectTopGames(ctx context.Context, st query.Statement) ([]TopGame, error) {
	games := []TopGame{}
	if err := s.queries.SelectContext(ctx, &games, st.SQL, st.Args...); err != nil {
		return nil, err
	}
	return games, nil
}

// recentGames lists the latest released games.
func (s *Service) recentGames(ctx context.Context, limit int) ([]TopGame, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Where("released = ?", true).
		Where("release_date IS NOT NULL").
		Order("release_date DESC").
		Order("app_id").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	recent := make([]TopGame, 0, len(games))
	for _, game := range games {
		recent = append(recent, TopGame{
			AppID:            game.AppID,
			Name:             game.Name,
			Price:            game.Price,
			ReleaseDate:      formatDate(game.ReleaseDate),
			Released:         game.Released,
			ShortDescription: game.ShortDescription,
		})
	}
	return recent, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// TagNames lists every tag name alphabetically.
func (s *Service) TagNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Tag{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return names, nil
}

// FlushCache drops every cached response. It is a no-op without a cache.
func (s *Service) FlushCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.Flush(ctx)
}

func cacheKey(endpoint string, params any) string {
	encoded, err := json.Marshal(params)
	if err != nil {
		return endpoint
	}
	return endpoint + ":" + string(encoded)
}

// cached serves load through the cache. Cache failures are logged and never
// fail the request.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	if s.cache == nil {
		return load()
	}

	var hit T
	ok, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		s.logger.WarnContext(ctx, "cache_get_failed", slog.String("key", key), slog.Any("err", err))
	} else if ok {
		return hit, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "cache_set_failed", slog.String("key", key), slog.Any("err", err))
	}
	return value, nil
}
