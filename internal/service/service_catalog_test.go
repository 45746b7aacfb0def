package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/akarpenko/fashion-gateway/internal/adapter"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/mock"
	"github.com/akarpenko/fashion-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_GetProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(mockAdapter, logger.Nop())
	ctx := context.Background()

	filter := models.ProductFilter{Limit: 20, Offset: 40}
	page := models.ProductPage{
		Limit:   20,
		Offset:  40,
		Count:   1,
		Total:   120,
		Results: []json.RawMessage{json.RawMessage(`{"id":"p-1"}`)},
	}

	mockAdapter.EXPECT().GetProducts(ctx, filter).Return(page, nil)

	got, err := svc.GetProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestCatalogService_GetProducts_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(mockAdapter, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().GetProducts(ctx, gomock.Any()).Return(models.ProductPage{}, adapter.ErrCatalogUnavailable)

	_, err := svc.GetProducts(ctx, models.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrCatalogUnavailable)
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(mockAdapter, logger.Nop())
	ctx := context.Background()

	payload := json.RawMessage(`{"id":"p-1","name":"Silk scarf"}`)
	mockAdapter.EXPECT().GetProductByID(ctx, "p-1").Return(payload, nil)

	got, err := svc.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockCatalogAdapter(ctrl)
	svc := NewCatalogService(mockAdapter, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().GetProductByID(ctx, "ghost").Return(nil, adapter.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrProductNotFound)
}
