package model

// Tour 景点
type Tour struct {
	ID            uint     `gorm:"primarykey"`
	Title         string   `gorm:"size:255;not null;comment:景点名称"`
	TitleEn       *string  `gorm:"size:255;comment:英文名称"`
	Img           *string  `gorm:"size:255;comment:图片地址"`
	Score         *float64 `gorm:"comment:评分"`
	Comments      *int     `gorm:"index;comment:评论数"`
	CommentURL    *string  `gorm:"column:comment_url;size:255;comment:评论页地址"`
	RankTitle     *string  `gorm:"size:255;comment:榜单名称"`
	Ranks         *int     `gorm:"comment:榜单排名"`
	SelectUser    *string  `gorm:"size:255;comment:精选评论用户"`
	SelectComment *string  `gorm:"type:text;comment:精选评论"`
	Nation        *string  `gorm:"size:255;comment:国家"`
	City          *string  `gorm:"size:255;index;comment:城市"`
}

// TableName 指定表名
func (Tour) TableName() string {
	return "tb_tour"
}
