package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tour-insight/app/logger"
	"tour-insight/app/model"
	"tour-insight/app/schema"

	"gorm.io/gorm"
)

// seedTour 种子文件中的一条景点记录，字段与输出结构一致
type seedTour struct {
	Title         string   `json:"title"`
	TitleEn       *string  `json:"title_en"`
	Img           *string  `json:"img"`
	Score         *float64 `json:"score"`
	Comments      *int     `json:"comments"`
	CommentURL    *string  `json:"comment_url"`
	RankTitle     *string  `json:"rank_title"`
	Ranks         *int     `json:"ranks"`
	SelectUser    *string  `json:"select_user"`
	SelectComment *string  `json:"select_comment"`
	Nation        *string  `json:"nation"`
	City          *string  `json:"city"`
}

// SeedTours 景点表为空时从 JSON 文件导入数据，返回导入条数
func SeedTours(ctx context.Context, db *gorm.DB, path string, log *logger.Logger) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Tour{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		log.Infof("景点表已有 %d 条数据，跳过导入", count)
		return 0, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("读取种子文件失败: %w", err)
	}

	var rows []seedTour
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, fmt.Errorf("解析种子文件失败: %w", err)
	}

	tours := make([]model.Tour, 0, len(rows))
	for i, r := range rows {
		if r.Title == "" {
			return 0, fmt.Errorf("第 %d 条记录缺少 title", i+1)
		}
		tours = append(tours, model.Tour{
			Title:         schema.Normalize(r.Title),
			TitleEn:       r.TitleEn,
			Img:           r.Img,
			Score:         r.Score,
			Comments:      r.Comments,
			CommentURL:    r.CommentURL,
			RankTitle:     r.RankTitle,
			Ranks:         r.Ranks,
			SelectUser:    r.SelectUser,
			SelectComment: r.SelectComment,
			Nation:        r.Nation,
			City:          r.City,
		})
	}
	if len(tours) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).CreateInBatches(tours, 100).Error; err != nil {
		return 0, fmt.Errorf("导入景点失败: %w", err)
	}

	log.Infof("已导入 %d 条景点数据", len(tours))
	return len(tours), nil
}
