package handler

import (
	"net/http"

	"campwatch/internal/delivery/http/response"
	"campwatch/internal/domain/entity"
	"campwatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SearchHandler serves recreation area, campground and campsite search.
type SearchHandler struct {
	uc usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// ProvidersResponse is the data of GET /api/search/providers.
type ProvidersResponse struct {
	Providers []entity.ProviderInfo `json:"providers"`
}

// RecreationAreas handles GET /api/search/recreation-areas?query=&state=&page=&per_page=.
func (h *SearchHandler) RecreationAreas(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.SearchRecreationAreas(c.Request().Context(), &usecase.RecreationAreaSearchInput{
		Query:      c.QueryParam("query"),
		State:      c.QueryParam("state"),
		Pagination: page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Campgrounds handles GET /api/search/campgrounds?recreation_area_id=&query=&state=&page=&per_page=.
func (h *SearchHandler) Campgrounds(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recAreaID, err := queryInt64(c, "recreation_area_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.SearchCampgrounds(c.Request().Context(), &usecase.CampgroundSearchInput{
		RecreationAreaID: recAreaID,
		Query:            c.QueryParam("query"),
		State:            c.QueryParam("state"),
		Pagination:       page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Campsites handles GET /api/search/campsites?campground_id=&recreation_area_id=&page=&per_page=.
func (h *SearchHandler) Campsites(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	campgroundID, err := queryInt64(c, "campground_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	recAreaID, err := queryInt64(c, "recreation_area_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.SearchCampsites(c.Request().Context(), &usecase.CampsiteSearchInput{
		CampgroundID:     campgroundID,
		RecreationAreaID: recAreaID,
		Pagination:       page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Providers lists the reservation providers.
func (h *SearchHandler) Providers(c echo.Context) error {
	return response.Success(c, http.StatusOK, ProvidersResponse{
		Providers: h.uc.ListProviders(c.Request().Context()),
	}, "")
}

func pagination(c echo.Context) (usecase.Pagination, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return usecase.Pagination{}, err
	}

	perPage, err := queryInt(c, "per_page", usecase.DefaultPerPage)
	if err != nil {
		return usecase.Pagination{}, err
	}

	return usecase.Pagination{Page: page, PerPage: perPage}, nil
}
