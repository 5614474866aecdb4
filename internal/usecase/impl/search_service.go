package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/service"
	"campwatch/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultRecreationAreaQuery = "National Park"
	defaultCampgroundQuery     = "Campground"

	// maxCascadeCampgrounds caps how many campgrounds of a recreation area are expanded into campsites.
	maxCascadeCampgrounds = 5
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	provider service.SearchProvider
	logger   *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Provider service.SearchProvider
	Logger   *slog.Logger
}

// NewSearchService creates the search use case.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *searchService) SearchRecreationAreas(ctx context.Context, input *usecase.RecreationAreaSearchInput) (*entity.SearchResponse, error) {
	if err := validatePagination(input.Pagination); err != nil {
		return nil, err
	}

	query := service.RecreationAreaQuery{Query: input.Query, State: input.State}
	if query.Query == "" {
		query = service.RecreationAreaQuery{Query: defaultRecreationAreaQuery}
	}

	areas, err := srv.provider.FindRecreationAreas(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Recreation area search failed, serving fallback data",
			slog.String("query", input.Query),
			slog.Any("error", err),
		)

		return paginate(fallbackRecreationAreas(input.Query), input.Pagination), nil
	}

	results := make([]entity.SearchResult, 0, len(areas))
	for _, area := range areas {
		location := area.Location()
		results = append(results, entity.SearchResult{
			ID:          area.ID,
			Name:        area.Name,
			Description: &location,
			Location:    &location,
		})
	}

	return paginate(results, input.Pagination), nil
}

func (srv *searchService) SearchCampgrounds(ctx context.Context, input *usecase.CampgroundSearchInput) (*entity.SearchResponse, error) {
	if err := validatePagination(input.Pagination); err != nil {
		return nil, err
	}

	var query service.CampgroundQuery
	switch {
	case input.RecreationAreaID != nil:
		query.RecreationAreaID = input.RecreationAreaID
	case input.Query != "":
		query.Query = input.Query
		query.State = input.State
	default:
		query.Query = defaultCampgroundQuery
	}

	campgrounds, err := srv.provider.FindCampgrounds(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Campground search failed, serving fallback data",
			slog.Any("recreationAreaID", input.RecreationAreaID),
			slog.String("query", input.Query),
			slog.Any("error", err),
		)

		return paginate(fallbackCampgrounds(), input.Pagination), nil
	}

	results := make([]entity.SearchResult, 0, len(campgrounds))
	for _, campground := range campgrounds {
		results = append(results, campgroundResult(campground))
	}

	return paginate(results, input.Pagination), nil
}

func (srv *searchService) SearchCampsites(ctx context.Context, input *usecase.CampsiteSearchInput) (*entity.SearchResponse, error) {
	if err := validatePagination(input.Pagination); err != nil {
		return nil, err
	}

	campsites, err := srv.findCampsites(ctx, input)
	if err != nil {
		srv.log(ctx).Warn("Campsite search failed, serving fallback data",
			slog.Any("campgroundID", input.CampgroundID),
			slog.Any("recreationAreaID", input.RecreationAreaID),
			slog.Any("error", err),
		)

		return paginate(fallbackCampsites(), input.Pagination), nil
	}

	results := make([]entity.SearchResult, 0, len(campsites))
	for _, campsite := range campsites {
		results = append(results, campsiteResult(campsite))
	}

	return paginate(results, input.Pagination), nil
}

func (srv *searchService) findCampsites(ctx context.Context, input *usecase.CampsiteSearchInput) ([]entity.Campsite, error) {
	switch {
	case input.CampgroundID != nil:
		return srv.provider.FindCampsites(ctx, *input.CampgroundID)
	case input.RecreationAreaID != nil:
		campgrounds, err := srv.provider.FindCampgrounds(ctx, service.CampgroundQuery{RecreationAreaID: input.RecreationAreaID})
		if err != nil {
			return nil, err
		}
		if len(campgrounds) > maxCascadeCampgrounds {
			campgrounds = campgrounds[:maxCascadeCampgrounds]
		}

		var campsites []entity.Campsite
		for _, campground := range campgrounds {
			sites, err := srv.provider.FindCampsites(ctx, campground.ID)
			if err != nil {
				return nil, err
			}
			campsites = append(campsites, sites...)
		}

		return campsites, nil
	default:
		return nil, nil
	}
}

func (srv *searchService) ListProviders(_ context.Context) []entity.ProviderInfo {
	return []entity.ProviderInfo{
		{
			Name:              "RecreationDotGov",
			Description:       "Recreation.gov - US National Parks and Federal Lands",
			SupportedFeatures: []string{"campsites", "tickets", "timed_entries"},
		},
		{
			Name:              "Yellowstone",
			Description:       "Yellowstone National Park Lodges",
			SupportedFeatures: []string{"campsites"},
		},
		{
			Name:              "ReserveCalifornia",
			Description:       "California State Parks",
			SupportedFeatures: []string{"campsites"},
		},
		{
			Name:              "GoingToCamp",
			Description:       "Multiple Canadian and US State Parks",
			SupportedFeatures: []string{"campsites"},
		},
	}
}

func campgroundResult(campground entity.Campground) entity.SearchResult {
	description := "Campground in " + campground.RecreationAreaName
	location := campground.RecreationAreaName
	result := entity.SearchResult{
		ID:          campground.ID,
		Name:        campground.Name,
		Description: &description,
		Location:    &location,
	}
	if campground.RecreationAreaID != 0 {
		result.RecreationAreaID = &campground.RecreationAreaID
	}
	if campground.RecreationAreaName != "" {
		result.RecreationAreaName = &campground.RecreationAreaName
	}

	return result
}

func campsiteResult(campsite entity.Campsite) entity.SearchResult {
	description := "Campsite in " + campsite.CampgroundName
	location := campsite.CampgroundName
	result := entity.SearchResult{
		ID:           campsite.ID,
		Name:         campsite.Name,
		Description:  &description,
		Location:     &location,
		CampgroundID: &campsite.CampgroundID,
	}
	if campsite.CampgroundName != "" {
		result.CampgroundName = &campsite.CampgroundName
	}
	if campsite.CampsiteType != "" {
		result.CampsiteType = &campsite.CampsiteType
	}
	if campsite.MaxOccupancy > 0 {
		result.MaxOccupancy = &campsite.MaxOccupancy
	}

	return result
}

func validatePagination(p usecase.Pagination) error {
	if p.Page < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
	}
	if p.PerPage < 1 || p.PerPage > usecase.MaxPerPage {
		return domainerrors.ErrValidationFailed.WithDetails("per_page must be between 1 and 100")
	}

	return nil
}

// paginate slices one page out of the full list. Total is always the full count.
func paginate(results []entity.SearchResult, p usecase.Pagination) *entity.SearchResponse {
	page := []entity.SearchResult{}
	start := (p.Page - 1) * p.PerPage
	if start < len(results) {
		end := min(start+p.PerPage, len(results))
		page = results[start:end]
	}

	return &entity.SearchResponse{
		Results: page,
		Total:   len(results),
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}

func mockResult(id int64, name, description, location string) entity.SearchResult {
	return entity.SearchResult{ID: id, Name: name, Description: &description, Location: &location}
}

// fallbackRecreationAreas filters the fixed dataset by a case-insensitive name match.
func fallbackRecreationAreas(query string) []entity.SearchResult {
	areas := []entity.SearchResult{
		mockResult(2725, "Glacier National Park", "Montana", "MT"),
		mockResult(2907, "Rocky Mountain National Park", "Colorado", "CO"),
		mockResult(2582, "Yosemite National Park", "California", "CA"),
		mockResult(2843, "Yellowstone National Park", "Wyoming", "WY"),
		mockResult(2844, "Grand Canyon National Park", "Arizona", "AZ"),
	}
	if query == "" {
		return areas
	}

	needle := strings.ToLower(query)
	filtered := make([]entity.SearchResult, 0, len(areas))
	for _, area := range areas {
		if strings.Contains(strings.ToLower(area.Name), needle) {
			filtered = append(filtered, area)
		}
	}

	return filtered
}

func fallbackCampgrounds() []entity.SearchResult {
	return []entity.SearchResult{
		mockResult(1001, "Many Glacier Campground", "Glacier National Park", "Glacier National Park"),
		mockResult(1002, "Moraine Park Campground", "Rocky Mountain National Park", "Rocky Mountain National Park"),
		mockResult(1003, "Yosemite Valley Campground", "Yosemite National Park", "Yosemite National Park"),
		mockResult(1004, "Mammoth Campground", "Yellowstone National Park", "Yellowstone National Park"),
		mockResult(1005, "Mather Campground", "Grand Canyon National Park", "Grand Canyon National Park"),
	}
}

func fallbackCampsites() []entity.SearchResult {
	return []entity.SearchResult{
		mockResult(2001, "Site A01", "Many Glacier Campground", "Many Glacier Campground"),
		mockResult(2002, "Site A02", "Many Glacier Campground", "Many Glacier Campground"),
		mockResult(2003, "Site B01", "Moraine Park Campground", "Moraine Park Campground"),
		mockResult(2004, "Site B02", "Moraine Park Campground", "Moraine Park Campground"),
		mockResult(2005, "Site C01", "Yosemite Valley Campground", "Yosemite Valley Campground"),
	}
}
