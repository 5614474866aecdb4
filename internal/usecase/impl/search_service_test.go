package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/service"
	mockSvc "campwatch/internal/mocks/service"
	"campwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProviderDown = errors.New("provider unavailable")

func createTestSearchService(t *testing.T) (usecase.SearchUsecase, *mockSvc.MockSearchProvider) {
	provider := mockSvc.NewMockSearchProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSearchService(SearchServiceParams{Provider: provider, Logger: logger}), provider
}

func page(p, perPage int) usecase.Pagination {
	return usecase.Pagination{Page: p, PerPage: perPage}
}

func resultIDs(results []entity.SearchResult) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}

	return ids
}

func TestSearchService_RecreationAreas_MapsProviderResults(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()

	provider.EXPECT().FindRecreationAreas(ctx, service.RecreationAreaQuery{Query: "Glacier", State: "MT"}).
		Return([]entity.RecreationArea{{ID: 2725, Name: "Glacier National Park", City: "West Glacier", State: "MT"}}, nil)

	resp, err := srv.SearchRecreationAreas(ctx, &usecase.RecreationAreaSearchInput{Query: "Glacier", State: "MT", Pagination: page(1, 20)})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Glacier National Park", resp.Results[0].Name)
	assert.Equal(t, "West Glacier, MT", *resp.Results[0].Description)
	assert.Equal(t, "West Glacier, MT", *resp.Results[0].Location)
	assert.Equal(t, 1, resp.Total)
}

func TestSearchService_RecreationAreas_DefaultQueryIgnoresState(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()

	provider.EXPECT().FindRecreationAreas(ctx, service.RecreationAreaQuery{Query: "National Park"}).
		Return([]entity.RecreationArea{}, nil)

	resp, err := srv.SearchRecreationAreas(ctx, &usecase.RecreationAreaSearchInput{State: "CA", Pagination: page(1, 20)})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchService_RecreationAreas_FallbackPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		wantIDs []int64
	}{
		{name: "first page", page: 1, wantIDs: []int64{2725, 2907}},
		{name: "last partial page", page: 3, wantIDs: []int64{2844}},
		{name: "past the end", page: 4, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, provider := createTestSearchService(t)
			ctx := context.Background()
			provider.EXPECT().FindRecreationAreas(ctx, service.RecreationAreaQuery{Query: "National Park"}).Return(nil, errProviderDown)

			resp, err := srv.SearchRecreationAreas(ctx, &usecase.RecreationAreaSearchInput{Pagination: page(tt.page, 2)})

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, resultIDs(resp.Results))
			assert.Equal(t, 5, resp.Total)
			assert.Equal(t, tt.page, resp.Page)
			assert.Equal(t, 2, resp.PerPage)
		})
	}
}

func TestSearchService_RecreationAreas_FallbackFiltersByQuery(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()
	provider.EXPECT().FindRecreationAreas(ctx, service.RecreationAreaQuery{Query: "yellow"}).Return(nil, errProviderDown)

	resp, err := srv.SearchRecreationAreas(ctx, &usecase.RecreationAreaSearchInput{Query: "yellow", Pagination: page(1, 20)})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(2843), resp.Results[0].ID)
	assert.Equal(t, "Wyoming", *resp.Results[0].Description)
	assert.Equal(t, "WY", *resp.Results[0].Location)
}

func TestSearchService_Campgrounds_FilterPrecedence(t *testing.T) {
	areaID := int64(2725)

	tests := []struct {
		name  string
		input *usecase.CampgroundSearchInput
		want  service.CampgroundQuery
	}{
		{
			name:  "recreation area id wins",
			input: &usecase.CampgroundSearchInput{RecreationAreaID: &areaID, Query: "Many", State: "MT", Pagination: page(1, 20)},
			want:  service.CampgroundQuery{RecreationAreaID: &areaID},
		},
		{
			name:  "free text with state",
			input: &usecase.CampgroundSearchInput{Query: "Many", State: "MT", Pagination: page(1, 20)},
			want:  service.CampgroundQuery{Query: "Many", State: "MT"},
		},
		{
			name:  "default query",
			input: &usecase.CampgroundSearchInput{Pagination: page(1, 20)},
			want:  service.CampgroundQuery{Query: "Campground"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, provider := createTestSearchService(t)
			ctx := context.Background()
			provider.EXPECT().FindCampgrounds(ctx, tt.want).Return([]entity.Campground{
				{ID: 1001, Name: "Many Glacier Campground", RecreationAreaID: 2725, RecreationAreaName: "Glacier National Park"},
			}, nil)

			resp, err := srv.SearchCampgrounds(ctx, tt.input)

			require.NoError(t, err)
			require.Len(t, resp.Results, 1)
			result := resp.Results[0]
			assert.Equal(t, "Campground in Glacier National Park", *result.Description)
			assert.Equal(t, "Glacier National Park", *result.Location)
			assert.Equal(t, int64(2725), *result.RecreationAreaID)
			assert.Equal(t, "Glacier National Park", *result.RecreationAreaName)
		})
	}
}

func TestSearchService_Campgrounds_Fallback(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()
	provider.EXPECT().FindCampgrounds(ctx, service.CampgroundQuery{Query: "Campground"}).Return(nil, errProviderDown)

	resp, err := srv.SearchCampgrounds(ctx, &usecase.CampgroundSearchInput{Pagination: page(1, 20)})

	require.NoError(t, err)
	assert.Equal(t, []int64{1001, 1002, 1003, 1004, 1005}, resultIDs(resp.Results))
	assert.Equal(t, "Mather Campground", resp.Results[4].Name)
	assert.Nil(t, resp.Results[0].RecreationAreaID)
}

func TestSearchService_Campsites_ByCampground(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()
	campgroundID := int64(1001)
	provider.EXPECT().FindCampsites(ctx, campgroundID).Return([]entity.Campsite{
		{ID: 2001, Name: "Site A01", CampgroundID: 1001, CampgroundName: "Many Glacier Campground", CampsiteType: "STANDARD NONELECTRIC", MaxOccupancy: 6},
	}, nil)

	resp, err := srv.SearchCampsites(ctx, &usecase.CampsiteSearchInput{CampgroundID: &campgroundID, Pagination: page(1, 20)})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, "Campsite in Many Glacier Campground", *result.Description)
	assert.Equal(t, int64(1001), *result.CampgroundID)
	assert.Equal(t, "STANDARD NONELECTRIC", *result.CampsiteType)
	assert.Equal(t, 6, *result.MaxOccupancy)
}

func TestSearchService_Campsites_CascadeLimitedToFiveCampgrounds(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()
	areaID := int64(2725)

	campgrounds := make([]entity.Campground, 0, 7)
	for i := range 7 {
		campgrounds = append(campgrounds, entity.Campground{ID: int64(1001 + i)})
	}
	provider.EXPECT().FindCampgrounds(ctx, service.CampgroundQuery{RecreationAreaID: &areaID}).Return(campgrounds, nil)
	for i := range 5 {
		id := int64(1001 + i)
		provider.EXPECT().FindCampsites(ctx, id).Return([]entity.Campsite{{ID: id * 10, CampgroundID: id}}, nil).Once()
	}

	resp, err := srv.SearchCampsites(ctx, &usecase.CampsiteSearchInput{RecreationAreaID: &areaID, Pagination: page(1, 20)})

	require.NoError(t, err)
	assert.Equal(t, []int64{10010, 10020, 10030, 10040, 10050}, resultIDs(resp.Results))
	assert.Equal(t, 5, resp.Total)
}

func TestSearchService_Campsites_NoFilterReturnsEmpty(t *testing.T) {
	srv, _ := createTestSearchService(t)

	resp, err := srv.SearchCampsites(context.Background(), &usecase.CampsiteSearchInput{Pagination: page(1, 20)})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchService_Campsites_FallbackOnCascadeError(t *testing.T) {
	srv, provider := createTestSearchService(t)
	ctx := context.Background()
	areaID := int64(2725)
	provider.EXPECT().FindCampgrounds(ctx, service.CampgroundQuery{RecreationAreaID: &areaID}).
		Return([]entity.Campground{{ID: 1001}}, nil)
	provider.EXPECT().FindCampsites(ctx, int64(1001)).Return(nil, errProviderDown)

	resp, err := srv.SearchCampsites(ctx, &usecase.CampsiteSearchInput{RecreationAreaID: &areaID, Pagination: page(2, 2)})

	require.NoError(t, err)
	assert.Equal(t, []int64{2003, 2004}, resultIDs(resp.Results))
	assert.Equal(t, 5, resp.Total)
}

func TestSearchService_RejectsInvalidPagination(t *testing.T) {
	srv, _ := createTestSearchService(t)
	ctx := context.Background()

	for _, p := range []usecase.Pagination{page(0, 20), page(1, 0), page(1, 101)} {
		_, err := srv.SearchRecreationAreas(ctx, &usecase.RecreationAreaSearchInput{Pagination: p})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestSearchService_ListProviders(t *testing.T) {
	srv, _ := createTestSearchService(t)

	providers := srv.ListProviders(context.Background())

	require.Len(t, providers, 4)
	assert.Equal(t, "RecreationDotGov", providers[0].Name)
	assert.Equal(t, []string{"campsites", "tickets", "timed_entries"}, providers[0].SupportedFeatures)
	assert.Equal(t, "GoingToCamp", providers[3].Name)
}
