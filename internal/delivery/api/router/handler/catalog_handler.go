package handler

import (
	"log/slog"
	"net/http"

	"showmyshop/internal/delivery/api/response"
	"showmyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves search and map views of the listing
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SearchShops handles GET /shops/search?q=&sort=&lat=&lng=
func (h *CatalogHandler) SearchShops(c echo.Context) error {
	lat, err := optionalFloatQuery(c, "lat")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	lng, err := optionalFloatQuery(c, "lng")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results, err := h.catalogUC.Search(c.Request().Context(), &usecase.SearchShopsInput{
		Query: c.QueryParam("q"),
		Sort:  c.QueryParam("sort"),
		Lat:   lat,
		Lng:   lng,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// ShopMarkers handles GET /shops/geojson. The body is a bare FeatureCollection
// so map clients can load it directly.
func (h *CatalogHandler) ShopMarkers(c echo.Context) error {
	fc, err := h.catalogUC.Markers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, fc)
}
