package entity

// SearchResult is the uniform shape of recreation area, campground and campsite search hits.
type SearchResult struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	Location           *string `json:"location"`
	RecreationAreaID   *int64  `json:"recreation_area_id,omitempty"`
	RecreationAreaName *string `json:"recreation_area_name,omitempty"`
	CampgroundID       *int64  `json:"campground_id,omitempty"`
	CampgroundName     *string `json:"campground_name,omitempty"`
	CampsiteType       *string `json:"campsite_type,omitempty"`
	MaxOccupancy       *int    `json:"max_occupancy,omitempty"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// ProviderInfo describes a reservation provider the service knows about.
type ProviderInfo struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	SupportedFeatures []string `json:"supported_features"`
}

// RecreationArea is a park or federal land unit as reported by a search provider.
type RecreationArea struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// Location renders "City, ST", falling back to whichever part is present.
func (a RecreationArea) Location() string {
	switch {
	case a.City != "" && a.State != "":
		return a.City + ", " + a.State
	case a.State != "":
		return a.State
	default:
		return a.City
	}
}

// Campground is a bookable facility inside a recreation area.
type Campground struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RecreationAreaID   int64  `json:"recreation_area_id,omitempty"`
	RecreationAreaName string `json:"recreation_area_name,omitempty"`
}

// Campsite is a single site inside a campground.
type Campsite struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CampgroundID   int64  `json:"campground_id"`
	CampgroundName string `json:"campground_name,omitempty"`
	CampsiteType   string `json:"campsite_type,omitempty"`
	MaxOccupancy   int    `json:"max_occupancy,omitempty"`
}

// CampsiteAvailability lists the nights a campsite can be booked.
type CampsiteAvailability struct {
	CampsiteID   int64
	CampsiteName string
	CampgroundID int64
	Nights       []Date
}
