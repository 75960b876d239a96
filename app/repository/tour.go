package repository

import (
	"context"

	"tour-insight/app/model"

	"gorm.io/gorm"
)

// TourRepository 景点的存储与查询
type TourRepository interface {
	TopByComments(ctx context.Context, limit int) ([]model.Tour, error)
	TopByScore(ctx context.Context, minComments, limit int) ([]model.Tour, error)
	CountByCity(ctx context.Context) ([]model.ChartData, error)
	Search(ctx context.Context, title string, offset, limit int) ([]model.Tour, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Tour, error)
	Create(ctx context.Context, tour *model.Tour) error
	Save(ctx context.Context, tour *model.Tour) error
	Delete(ctx context.Context, tour *model.Tour) error
}

// GormTourRepository 是 TourRepository 的 GORM 实现
type GormTourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *GormTourRepository {
	if db == nil {
		panic("database connection cannot be nil for GormTourRepository")
	}
	return &GormTourRepository{db: db}
}

// TopByComments 按评论数降序，评论数相同按 id 升序，空值排在最后
func (r *GormTourRepository) TopByComments(ctx context.Context, limit int) ([]model.Tour, error) {
	var tours []model.Tour
	err := r.db.WithContext(ctx).
		Order("comments IS NULL").
		Order("comments DESC").
		Order("id ASC").
		Limit(limit).
		Find(&tours).Error
	return tours, err
}

// TopByScore 评论数大于 minComments 的景点按评分降序
func (r *GormTourRepository) TopByScore(ctx context.Context, minComments, limit int) ([]model.Tour, error) {
	var tours []model.Tour
	err := r.db.WithContext(ctx).
		Where("comments > ?", minComments).
		Order("score IS NULL").
		Order("score DESC").
		Order("id ASC").
		Limit(limit).
		Find(&tours).Error
	return tours, err
}

// CountByCity 按城市分组计数，包括城市为空的分组
func (r *GormTourRepository) CountByCity(ctx context.Context) ([]model.ChartData, error) {
	var rows []model.ChartData
	err := r.db.WithContext(ctx).
		Model(&model.Tour{}).
		Select("city AS name, COUNT(id) AS value").
		Group("city").
		Order("value DESC").
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

// Search 按标题模糊查询，total 为分页前的总数
func (r *GormTourRepository) Search(ctx context.Context, title string, offset, limit int) ([]model.Tour, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Tour{}).Where("title LIKE ?", "%"+title+"%")

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tours []model.Tour
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&tours).Error; err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (r *GormTourRepository) FindByID(ctx context.Context, id uint) (*model.Tour, error) {
	var tour model.Tour
	if err := r.db.WithContext(ctx).First(&tour, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tour, nil
}

func (r *GormTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

// Save 写回全部列，未修改的字段保持原值
func (r *GormTourRepository) Save(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

// Delete 物理删除
func (r *GormTourRepository) Delete(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Delete(tour).Error
}
