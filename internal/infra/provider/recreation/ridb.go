package recreation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"campwatch/internal/domain/entity"
	"campwatch/internal/domain/service"
)

const (
	facilityTypeCampground = "campground"
	activityCamping        = "CAMPING"
	maxOccupancyAttribute  = "max num of people"
)

type ridbMetadata struct {
	Results struct {
		CurrentCount int `json:"CURRENT_COUNT"`
		TotalCount   int `json:"TOTAL_COUNT"`
	} `json:"RESULTS"`
}

type ridbAddress struct {
	City      string `json:"City"`
	StateCode string `json:"AddressStateCode"`
}

type ridbRecArea struct {
	ID        ridbID        `json:"RecAreaID"`
	Name      string        `json:"RecAreaName"`
	Addresses []ridbAddress `json:"RECAREAADDRESS"`
}

type ridbRecAreaRef struct {
	ID   ridbID `json:"RecAreaID"`
	Name string `json:"RecAreaName"`
}

type ridbFacility struct {
	ID              ridbID           `json:"FacilityID"`
	Name            string           `json:"FacilityName"`
	TypeDescription string           `json:"FacilityTypeDescription"`
	ParentRecAreaID ridbID           `json:"ParentRecAreaID"`
	RecAreas        []ridbRecAreaRef `json:"RECAREA"`
}

type ridbAttribute struct {
	Name  string `json:"AttributeName"`
	Value string `json:"AttributeValue"`
}

type ridbCampsite struct {
	ID         ridbID          `json:"CampsiteID"`
	Name       string          `json:"CampsiteName"`
	FacilityID ridbID          `json:"FacilityID"`
	Type       string          `json:"CampsiteType"`
	Attributes []ridbAttribute `json:"ATTRIBUTES"`
}

type ridbPage[T any] struct {
	Data     []T          `json:"RECDATA"`
	Metadata ridbMetadata `json:"METADATA"`
}

// fetchAll walks RIDB offset pages until the reported total or the page cap is reached.
func fetchAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var all []T
	for page := 0; page < c.maxPages; page++ {
		query := url.Values{}
		for k, v := range params {
			query[k] = v
		}
		query.Set("limit", strconv.Itoa(c.pageSize))
		query.Set("offset", strconv.Itoa(page*c.pageSize))

		var resp ridbPage[T]
		if err := c.getJSON(ctx, c.ridbBaseURL+path+"?"+query.Encode(), true, &resp); err != nil {
			return nil, err
		}

		all = append(all, resp.Data...)
		if len(resp.Data) < c.pageSize || len(all) >= resp.Metadata.Results.TotalCount {
			break
		}
	}

	return all, nil
}

// FindRecreationAreas queries RIDB recreation areas by free text and state.
func (c *Client) FindRecreationAreas(ctx context.Context, q service.RecreationAreaQuery) ([]entity.RecreationArea, error) {
	params := url.Values{}
	params.Set("full", "true")
	if q.Query != "" {
		params.Set("query", q.Query)
	}
	if q.State != "" {
		params.Set("state", strings.ToUpper(q.State))
	}

	recAreas, err := fetchAll[ridbRecArea](ctx, c, "/recareas", params)
	if err != nil {
		return nil, err
	}

	areas := make([]entity.RecreationArea, 0, len(recAreas))
	for _, ra := range recAreas {
		area := entity.RecreationArea{ID: int64(ra.ID), Name: ra.Name}
		if len(ra.Addresses) > 0 {
			area.City = ra.Addresses[0].City
			area.State = ra.Addresses[0].StateCode
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// FindCampgrounds lists campground facilities of a recreation area, or matching a query.
func (c *Client) FindCampgrounds(ctx context.Context, q service.CampgroundQuery) ([]entity.Campground, error) {
	params := url.Values{}
	params.Set("full", "true")
	params.Set("activity", activityCamping)

	var path string
	if q.RecreationAreaID != nil {
		path = fmt.Sprintf("/recareas/%d/facilities", *q.RecreationAreaID)
	} else {
		path = "/facilities"
		if q.Query != "" {
			params.Set("query", q.Query)
		}
		if q.State != "" {
			params.Set("state", strings.ToUpper(q.State))
		}
	}

	facilities, err := fetchAll[ridbFacility](ctx, c, path, params)
	if err != nil {
		return nil, err
	}

	var parentName string
	if q.RecreationAreaID != nil {
		parentName = c.recreationAreaName(ctx, *q.RecreationAreaID, facilities)
	}

	campgrounds := make([]entity.Campground, 0, len(facilities))
	for _, f := range facilities {
		if !strings.EqualFold(f.TypeDescription, facilityTypeCampground) {
			continue
		}

		cg := entity.Campground{
			ID:               int64(f.ID),
			Name:             f.Name,
			RecreationAreaID: int64(f.ParentRecAreaID),
		}
		if len(f.RecAreas) > 0 {
			cg.RecreationAreaID = int64(f.RecAreas[0].ID)
			cg.RecreationAreaName = f.RecAreas[0].Name
		}
		if q.RecreationAreaID != nil {
			cg.RecreationAreaID = *q.RecreationAreaID
			if cg.RecreationAreaName == "" {
				cg.RecreationAreaName = parentName
			}
		}
		campgrounds = append(campgrounds, cg)
	}

	return campgrounds, nil
}

// recreationAreaName resolves the area name for facilities that do not embed it.
func (c *Client) recreationAreaName(ctx context.Context, id int64, facilities []ridbFacility) string {
	for _, f := range facilities {
		if len(f.RecAreas) > 0 && f.RecAreas[0].Name != "" {
			return f.RecAreas[0].Name
		}
	}
	if len(facilities) == 0 {
		return ""
	}

	var area ridbRecArea
	if err := c.getJSON(ctx, fmt.Sprintf("%s/recareas/%d", c.ridbBaseURL, id), true, &area); err != nil {
		c.logger.WarnContext(ctx, "Failed to resolve recreation area name",
			slog.Int64("recreation_area_id", id),
			slog.Any("error", err),
		)

		return ""
	}

	return area.Name
}

// FindCampsites lists the campsites of a campground.
func (c *Client) FindCampsites(ctx context.Context, campgroundID int64) ([]entity.Campsite, error) {
	var facility ridbFacility
	if err := c.getJSON(ctx, fmt.Sprintf("%s/facilities/%d", c.ridbBaseURL, campgroundID), true, &facility); err != nil {
		return nil, err
	}

	sites, err := fetchAll[ridbCampsite](ctx, c, fmt.Sprintf("/facilities/%d/campsites", campgroundID), url.Values{})
	if err != nil {
		return nil, err
	}

	campsites := make([]entity.Campsite, 0, len(sites))
	for _, s := range sites {
		campsites = append(campsites, entity.Campsite{
			ID:             int64(s.ID),
			Name:           s.Name,
			CampgroundID:   campgroundID,
			CampgroundName: facility.Name,
			CampsiteType:   s.Type,
			MaxOccupancy:   maxOccupancy(s.Attributes),
		})
	}

	return campsites, nil
}

func maxOccupancy(attrs []ridbAttribute) int {
	for _, attr := range attrs {
		if strings.EqualFold(strings.TrimSpace(attr.Name), maxOccupancyAttribute) {
			if v, err := strconv.Atoi(strings.TrimSpace(attr.Value)); err == nil {
				return v
			}
		}
	}

	return 0
}
