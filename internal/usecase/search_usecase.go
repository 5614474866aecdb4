package usecase

import (
	"context"

	"campwatch/internal/domain/entity"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination selects one page of a result list. Page is 1-based.
type Pagination struct {
	Page    int
	PerPage int
}

// RecreationAreaSearchInput filters recreation areas.
type RecreationAreaSearchInput struct {
	Query string
	State string
	Pagination
}

// CampgroundSearchInput filters campgrounds. RecreationAreaID wins over Query.
type CampgroundSearchInput struct {
	RecreationAreaID *int64
	Query            string
	State            string
	Pagination
}

// CampsiteSearchInput filters campsites. CampgroundID wins over RecreationAreaID.
type CampsiteSearchInput struct {
	CampgroundID     *int64
	RecreationAreaID *int64
	Pagination
}

// SearchUsecase defines the search operations over the campsite provider.
// Provider failures never surface as errors: the fixed fallback dataset is served instead.
type SearchUsecase interface {
	SearchRecreationAreas(ctx context.Context, input *RecreationAreaSearchInput) (*entity.SearchResponse, error)
	SearchCampgrounds(ctx context.Context, input *CampgroundSearchInput) (*entity.SearchResponse, error)
	SearchCampsites(ctx context.Context, input *CampsiteSearchInput) (*entity.SearchResponse, error)
	ListProviders(ctx context.Context) []entity.ProviderInfo
}
