package handler

import (
	"net/http"
	"testing"

	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	mockUsecase "showmyshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: newDiscardLogger()}), adminUC
}

func TestAdminHandler_ApproveShop(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	shopID := uuid.New()

	adminUC.EXPECT().SetApproval(mock.Anything, shopID, false).Return(&entity.Shop{ID: shopID, Approved: false}, nil)

	rec := serve(t, h.ApproveShop, request{
		method: http.MethodPut,
		target: "/api/admin/shops/" + shopID.String() + "/approve",
		body:   `{"approved":false}`,
		params: map[string]string{"id": shopID.String()},
		caller: admin,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ApproveShop_MissingFlag(t *testing.T) {
	h, _ := newTestAdminHandler(t)
	shopID := uuid.New()

	rec := serve(t, h.ApproveShop, request{
		method: http.MethodPut,
		target: "/api/admin/shops/" + shopID.String() + "/approve",
		body:   `{}`,
		params: map[string]string{"id": shopID.String()},
		caller: admin,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAdminHandler_ApproveShop_NotFound(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	shopID := uuid.New()

	adminUC.EXPECT().SetApproval(mock.Anything, shopID, true).Return(nil, domainerrors.ErrShopNotFound)

	rec := serve(t, h.ApproveShop, request{
		method: http.MethodPut,
		target: "/api/admin/shops/" + shopID.String() + "/approve",
		body:   `{"approved":true}`,
		params: map[string]string{"id": shopID.String()},
		caller: admin,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_ListAndDelete(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	shopID := uuid.New()

	adminUC.EXPECT().ListShops(mock.Anything).Return([]*entity.Shop{{ID: shopID}}, nil)
	adminUC.EXPECT().DeleteShop(mock.Anything, shopID).Return(nil)

	rec := serve(t, h.ListShops, request{method: http.MethodGet, target: "/api/admin/shops", caller: admin})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h.DeleteShop, request{
		method: http.MethodDelete,
		target: "/api/admin/shops/" + shopID.String(),
		params: map[string]string{"id": shopID.String()},
		caller: admin,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, string(decode(t, rec).Data))
}
