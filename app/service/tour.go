package service

import (
	"context"
	"errors"

	"tour-insight/app/errs"
	"tour-insight/app/model"
	"tour-insight/app/repository"
	"tour-insight/app/schema"
)

// Invalidator 数据变更后需要失效的缓存
type Invalidator interface {
	Invalidate()
}

// TourService 景点的增删改查
type TourService struct {
	tours repository.TourRepository
	ranks Invalidator
}

func NewTourService(tours repository.TourRepository, ranks Invalidator) *TourService {
	return &TourService{tours: tours, ranks: ranks}
}

// List 按标题模糊查询并分页
func (s *TourService) List(ctx context.Context, q schema.TourQuery) ([]model.Tour, int64, error) {
	tours, total, err := s.tours.Search(ctx, schema.Normalize(q.Title), q.Offset(), q.Limit)
	if err != nil {
		return nil, 0, errs.Storage(err)
	}
	return tours, total, nil
}

func (s *TourService) Get(ctx context.Context, id uint) (*model.Tour, error) {
	return s.find(ctx, id)
}

// Create 新增景点，不返回新记录的 id
func (s *TourService) Create(ctx context.Context, p *schema.TourPatch) error {
	if err := p.ValidateCreate(); err != nil {
		return err
	}
	if err := s.tours.Create(ctx, p.NewTour()); err != nil {
		return errs.Storage(err)
	}
	s.ranks.Invalidate()
	return nil
}

// Update 只修改请求中出现的字段
func (s *TourService) Update(ctx context.Context, id uint, p *schema.TourPatch) error {
	tour, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := p.ValidateUpdate(); err != nil {
		return err
	}

	p.Apply(tour)
	if err := s.tours.Save(ctx, tour); err != nil {
		return errs.Storage(err)
	}
	s.ranks.Invalidate()
	return nil
}

// Delete 物理删除景点
func (s *TourService) Delete(ctx context.Context, id uint) error {
	tour, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tours.Delete(ctx, tour); err != nil {
		return errs.Storage(err)
	}
	s.ranks.Invalidate()
	return nil
}

func (s *TourService) find(ctx context.Context, id uint) (*model.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound(MsgTourNotFound)
	}
	if err != nil {
		return nil, errs.Storage(err)
	}
	return tour, nil
}
