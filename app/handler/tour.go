package handler

import (
	"tour-insight/app/logger"
	"tour-insight/app/schema"
	"tour-insight/app/service"

	"github.com/gin-gonic/gin"
)

// TourHandler 景点处理器
type TourHandler struct {
	base
	tours *service.TourService
}

func NewTourHandler(tours *service.TourService, log *logger.Logger) *TourHandler {
	return &TourHandler{base: base{logger: log}, tours: tours}
}

// GetTours 按标题模糊搜索并分页
func (h *TourHandler) GetTours(c *gin.Context) {
	var q schema.TourQuery
	if !h.bindQuery(c, &q) {
		return
	}

	tours, total, err := h.tours.List(c.Request.Context(), q)
	if err != nil {
		h.error(c, err)
		return
	}

	h.success(c, schema.Page[schema.TourRecord]{
		Total:   total,
		Records: schema.DumpTours(tours),
	}, "")
}

// GetTour 获取单个景点
func (h *TourHandler) GetTour(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	tour, err := h.tours.Get(c.Request.Context(), id)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, schema.DumpTour(tour), "")
}

// CreateTour 添加景点
func (h *TourHandler) CreateTour(c *gin.Context) {
	var req schema.TourPatch
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.tours.Create(c.Request.Context(), &req); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "添加景点成功")
}

// UpdateTour 修改景点，只更新请求中出现的字段
func (h *TourHandler) UpdateTour(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req schema.TourPatch
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.tours.Update(c.Request.Context(), id, &req); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "修改景点成功")
}

// DeleteTour 删除景点
func (h *TourHandler) DeleteTour(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.tours.Delete(c.Request.Context(), id); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, nil, "删除景点成功")
}
