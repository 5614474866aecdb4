package recreation

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"campwatch/internal/domain/entity"

	"github.com/pkg/errors"
)

const statusAvailable = "Available"

type monthAvailability struct {
	Campsites map[string]campsiteMonth `json:"campsites"`
}

type campsiteMonth struct {
	CampsiteID     string            `json:"campsite_id"`
	Site           string            `json:"site"`
	Loop           string            `json:"loop"`
	CampsiteType   string            `json:"campsite_type"`
	MaxNumPeople   int               `json:"max_num_people"`
	Availabilities map[string]string `json:"availabilities"`
}

// FindAvailability collects available nights in [start, end) month by month.
func (c *Client) FindAvailability(ctx context.Context, campgroundID int64, start, end entity.Date) ([]entity.CampsiteAvailability, error) {
	if !end.After(start) {
		return nil, nil
	}

	byID := make(map[int64]*entity.CampsiteAvailability)
	for month := firstOfMonth(start.Time); month.Before(end.Time); month = month.AddDate(0, 1, 0) {
		var resp monthAvailability
		params := url.Values{}
		params.Set("start_date", month.Format("2006-01-02T15:04:05.000Z"))
		rawURL := fmt.Sprintf("%s/availability/campground/%d/month?%s", c.availabilityBaseURL, campgroundID, params.Encode())
		if err := c.getJSON(ctx, rawURL, false, &resp); err != nil {
			return nil, err
		}

		for key, site := range resp.Campsites {
			idStr := site.CampsiteID
			if idStr == "" {
				idStr = key
			}
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid campsite id %q", idStr)
			}

			for stamp, status := range site.Availabilities {
				if status != statusAvailable {
					continue
				}
				ts, err := time.Parse(time.RFC3339, stamp)
				if err != nil {
					continue
				}
				night := entity.NewDate(ts)
				if night.Before(start) || !night.Before(end) {
					continue
				}

				entry, ok := byID[id]
				if !ok {
					entry = &entity.CampsiteAvailability{
						CampsiteID:   id,
						CampsiteName: site.Site,
						CampgroundID: campgroundID,
					}
					byID[id] = entry
				}
				entry.Nights = append(entry.Nights, night)
			}
		}
	}

	result := make([]entity.CampsiteAvailability, 0, len(byID))
	for _, entry := range byID {
		sort.Slice(entry.Nights, func(i, j int) bool { return entry.Nights[i].Before(entry.Nights[j]) })
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CampsiteID < result[j].CampsiteID })

	return result, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
