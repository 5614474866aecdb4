package entity_test

import (
	"encoding/json"
	"testing"

	"campwatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	CampgroundID entity.Optional[int64]       `json:"campground_id"`
	Name         entity.Optional[string]      `json:"name"`
	StartDate    entity.Optional[entity.Date] `json:"start_date"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"campground_id":null,"start_date":"2025-07-01"}`), &p))

	assert.True(t, p.CampgroundID.IsNull())
	assert.False(t, p.Name.Set)
	require.True(t, p.StartDate.Set)
	assert.Equal(t, "2025-07-01", p.StartDate.Value.String())

	require.Error(t, json.Unmarshal([]byte(`{"start_date":"July"}`), &p))
}

func TestOptional_Apply(t *testing.T) {
	stored := int64(232447)

	current := &stored
	entity.Optional[int64]{}.Apply(&current)
	require.NotNil(t, current)

	entity.Null[int64]().Apply(&current)
	assert.Nil(t, current)

	entity.Some(int64(2725)).Apply(&current)
	require.NotNil(t, current)
	assert.Equal(t, int64(2725), *current)
	assert.Equal(t, int64(2725), entity.Some(int64(2725)).Any())
	assert.Nil(t, entity.Null[int64]().Any())
}
