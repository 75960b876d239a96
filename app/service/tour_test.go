package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tour-insight/app/errs"
	"tour-insight/app/model"
	"tour-insight/app/repository"
	"tour-insight/app/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func patchFrom(t *testing.T, body string) *schema.TourPatch {
	t.Helper()
	var p schema.TourPatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func TestTourService_CreateListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	inv := &countingInvalidator{}
	s := NewTourService(repository.NewTourRepository(setupTestDB(t)), inv)

	err := s.Create(ctx, patchFrom(t, `{"img":"i.jpg","title":"颐和园","title_en":"Summer Palace","comments":800,"score":4.6,"select_comment":"美","nation":"中国","city":"北京"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls)

	tours, total, err := s.List(ctx, schema.TourQuery{ListQuery: schema.ListQuery{Page: 1, Limit: 10}, Title: "颐和园"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	created := tours[0]
	assert.Equal(t, "Summer Palace", *created.TitleEn)
	assert.Equal(t, 800, *created.Comments)

	require.NoError(t, s.Update(ctx, created.ID, patchFrom(t, `{"comments":1500}`)))
	updated, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500, *updated.Comments)
	assert.Equal(t, "颐和园", updated.Title)
	assert.Equal(t, "北京", *updated.City)
	assert.Equal(t, 2, inv.calls)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, 3, inv.calls)
}

func TestTourService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	inv := &countingInvalidator{}
	s := NewTourService(repository.NewTourRepository(setupTestDB(t)), inv)

	err := s.Create(ctx, patchFrom(t, `{"img":"","title_en":"","comments":1,"score":1,"select_comment":"","nation":"","city":""}`))
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.Contains(t, err.Error(), "title")
	assert.Zero(t, inv.calls)
}

func TestTourService_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewTourService(repository.NewTourRepository(setupTestDB(t)), &countingInvalidator{})

	err := s.Update(ctx, 404, patchFrom(t, `{"title":"x"}`))
	assert.Equal(t, MsgTourNotFound, err.Error())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	err = s.Delete(ctx, 404)
	assert.Equal(t, MsgTourNotFound, err.Error())
}

func TestTourService_StorageFailureOnWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTourRepository)
	inv := &countingInvalidator{}
	repo.On("FindByID", ctx, uint(7)).Return(&model.Tour{ID: 7, Title: "x"}, nil)
	repo.On("Delete", ctx, mock.AnythingOfType("*model.Tour")).Return(errors.New("disk I/O error"))

	s := NewTourService(repo, inv)
	err := s.Delete(ctx, 7)

	require.Error(t, err)
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))
	assert.Equal(t, "disk I/O error", err.Error())
	assert.Zero(t, inv.calls)
	repo.AssertExpectations(t)
}
