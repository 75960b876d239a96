package service

import (
	"context"
	"sync"

	"tour-insight/app/config"
	"tour-insight/app/errs"
	"tour-insight/app/logger"
	"tour-insight/app/model"
	"tour-insight/app/repository"

	"github.com/patrickmn/go-cache"
)

const (
	CommentsRankSize     = 10
	ScoreRankSize        = 5
	ScoreRankMinComments = 1000
)

const (
	keyCommentsRank = "rank:comments"
	keyScoreRank    = "rank:score"
	keyCityRank     = "rank:city"
)

// RankService 景点排行与统计，结果可缓存在进程内
type RankService struct {
	tours  repository.TourRepository
	cache  *cache.Cache
	logger *logger.Logger

	// gen 每次失效加一，加载前后不一致的结果不写回缓存
	mu  sync.Mutex
	gen uint64
}

// NewRankService cfg.Enabled 为 false 时不缓存
func NewRankService(tours repository.TourRepository, cfg config.CacheConfig, log *logger.Logger) *RankService {
	s := &RankService{tours: tours, logger: log}
	if cfg.Enabled && cfg.TTL > 0 {
		s.cache = cache.New(cfg.TTLDuration(), 2*cfg.TTLDuration())
	}
	return s
}

// CommentsRank 评论数最多的 10 个景点
func (s *RankService) CommentsRank(ctx context.Context) ([]model.Tour, error) {
	return cached(s, keyCommentsRank, func() ([]model.Tour, error) {
		return s.tours.TopByComments(ctx, CommentsRankSize)
	})
}

// ScoreRank 评论数超过 1000 的景点中评分最高的 5 个
func (s *RankService) ScoreRank(ctx context.Context) ([]model.Tour, error) {
	return cached(s, keyScoreRank, func() ([]model.Tour, error) {
		return s.tours.TopByScore(ctx, ScoreRankMinComments, ScoreRankSize)
	})
}

// CityRank 各城市的景点数量，按数量降序
func (s *RankService) CityRank(ctx context.Context) ([]model.ChartData, error) {
	return cached(s, keyCityRank, func() ([]model.ChartData, error) {
		return s.tours.CountByCity(ctx)
	})
}

// Invalidate 清空排行缓存，景点数据变更后调用
func (s *RankService) Invalidate() {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	s.gen++
	s.cache.Flush()
	s.mu.Unlock()
}

func (s *RankService) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// store 只有在加载期间没有发生失效时才写入缓存
func (s *RankService) store(gen uint64, items map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	for key, v := range items {
		s.cache.SetDefault(key, v)
	}
	return true
}

// Warm 重新计算全部排行并写入缓存
func (s *RankService) Warm(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	gen := s.generation()

	comments, err := s.tours.TopByComments(ctx, CommentsRankSize)
	if err != nil {
		return err
	}
	scores, err := s.tours.TopByScore(ctx, ScoreRankMinComments, ScoreRankSize)
	if err != nil {
		return err
	}
	cities, err := s.tours.CountByCity(ctx)
	if err != nil {
		return err
	}

	if !s.store(gen, map[string]any{
		keyCommentsRank: comments,
		keyScoreRank:    scores,
		keyCityRank:     cities,
	}) {
		s.logger.Debug("预热期间排行缓存已失效，丢弃本次结果")
	}
	return nil
}

func cached[T any](s *RankService, key string, load func() (T, error)) (T, error) {
	var gen uint64
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(T), nil
		}
		gen = s.generation()
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, errs.Storage(err)
	}

	if s.cache != nil {
		s.store(gen, map[string]any{key: v})
	}
	return v, nil
}
