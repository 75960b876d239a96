package schema

import (
	"tour-insight/app/errs"
	"tour-insight/app/model"
)

// TourRecord 景点的输出结构，字段与表列一一对应
type TourRecord struct {
	ID            uint     `json:"id"`
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

func DumpTour(t *model.Tour) TourRecord {
	return TourRecord{
		ID:            t.ID,
		Title:         t.Title,
		TitleEn:       t.TitleEn,
		Img:           t.Img,
		Score:         t.Score,
		Comments:      t.Comments,
		CommentURL:    t.CommentURL,
		RankTitle:     t.RankTitle,
		Ranks:         t.Ranks,
		SelectUser:    t.SelectUser,
		SelectComment: t.SelectComment,
		Nation:        t.Nation,
		City:          t.City,
	}
}

func DumpTours(tours []model.Tour) []TourRecord {
	records := make([]TourRecord, 0, len(tours))
	for i := range tours {
		records = append(records, DumpTour(&tours[i]))
	}
	return records
}

// TourQuery 景点列表查询参数
type TourQuery struct {
	ListQuery
	Title string `form:"title"`
}

// TourPatch 景点的可写字段，新增与修改共用
type TourPatch struct {
	Img           Optional[string]  `json:"img"`
	Title         Optional[string]  `json:"title"`
	TitleEn       Optional[string]  `json:"title_en"`
	Comments      Optional[int]     `json:"comments"`
	Score         Optional[float64] `json:"score"`
	SelectComment Optional[string]  `json:"select_comment"`
	Nation        Optional[string]  `json:"nation"`
	City          Optional[string]  `json:"city"`
}

// ValidateCreate 新增景点时所有字段必须出现，title 不能为空
func (p *TourPatch) ValidateCreate() error {
	required := []struct {
		name    string
		present bool
	}{
		{"img", p.Img.Present},
		{"title", p.Title.Present},
		{"title_en", p.TitleEn.Present},
		{"comments", p.Comments.Present},
		{"score", p.Score.Present},
		{"select_comment", p.SelectComment.Present},
		{"nation", p.Nation.Present},
		{"city", p.City.Present},
	}
	for _, f := range required {
		if !f.present {
			return errs.Missing(f.name)
		}
	}
	if isBlank(p.Title) {
		return errs.Empty("title")
	}
	return nil
}

// ValidateUpdate 修改时 title 若出现则不能置空，避免违反非空约束
func (p *TourPatch) ValidateUpdate() error {
	if p.Title.Present && p.Title.Value == nil {
		return errs.Empty("title")
	}
	return nil
}

// NewTour 根据已校验的请求创建景点
func (p *TourPatch) NewTour() *model.Tour {
	t := &model.Tour{}
	p.Apply(t)
	return t
}

// Apply 只覆盖请求中出现的字段
func (p *TourPatch) Apply(t *model.Tour) {
	if p.Title.Present && p.Title.Value != nil {
		t.Title = Normalize(*p.Title.Value)
	}
	assign(&t.Img, p.Img)
	assign(&t.TitleEn, normalizeOptional(p.TitleEn))
	assign(&t.Comments, p.Comments)
	assign(&t.Score, p.Score)
	assign(&t.SelectComment, p.SelectComment)
	assign(&t.Nation, normalizeOptional(p.Nation))
	assign(&t.City, normalizeOptional(p.City))
}
