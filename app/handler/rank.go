package handler

import (
	"tour-insight/app/logger"
	"tour-insight/app/schema"
	"tour-insight/app/service"

	"github.com/gin-gonic/gin"
)

// RankHandler 排行与统计
type RankHandler struct {
	base
	ranks *service.RankService
}

func NewRankHandler(ranks *service.RankService, log *logger.Logger) *RankHandler {
	return &RankHandler{base: base{logger: log}, ranks: ranks}
}

// CommentsRank 十大热门景点（按评论数）
func (h *RankHandler) CommentsRank(c *gin.Context) {
	tours, err := h.ranks.CommentsRank(c.Request.Context())
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpTours(tours), "")
}

// ScoreRank 评论数超过 1000 的景点按评分排名
func (h *RankHandler) ScoreRank(c *gin.Context) {
	tours, err := h.ranks.ScoreRank(c.Request.Context())
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpTours(tours), "")
}

// CityRank 景点按城市统计
func (h *RankHandler) CityRank(c *gin.Context) {
	rows, err := h.ranks.CityRank(c.Request.Context())
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpChart(rows), "")
}
