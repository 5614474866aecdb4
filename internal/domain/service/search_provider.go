package service

import (
	"context"

	"campwatch/internal/domain/entity"
)

// RecreationAreaQuery filters recreation areas by free text and state code.
type RecreationAreaQuery struct {
	Query string
	State string
}

// CampgroundQuery filters campgrounds. RecreationAreaID takes precedence over Query and State.
type CampgroundQuery struct {
	RecreationAreaID *int64
	Query            string
	State            string
}

// SearchProvider looks up recreation areas, campgrounds and campsites at a reservation system.
type SearchProvider interface {
	FindRecreationAreas(ctx context.Context, query RecreationAreaQuery) ([]entity.RecreationArea, error)
	FindCampgrounds(ctx context.Context, query CampgroundQuery) ([]entity.Campground, error)
	FindCampsites(ctx context.Context, campgroundID int64) ([]entity.Campsite, error)
}

// AvailabilityProvider reports which campsites can be booked for which nights.
type AvailabilityProvider interface {
	// FindAvailability returns, per campsite of the campground, the available nights in [start, end).
	FindAvailability(ctx context.Context, campgroundID int64, start, end entity.Date) ([]entity.CampsiteAvailability, error)
}
