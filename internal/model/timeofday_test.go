package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", tod.String())

	tod, err = ParseTimeOfDay("09:05:30")
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("not a time")
	assert.Error(t, err)
}

func TestTimeOfDayBefore(t *testing.T) {
	start, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)
	end, err := ParseTimeOfDay("12:00")
	require.NoError(t, err)

	assert.True(t, start.Before(end))
	assert.False(t, end.Before(start))
	assert.False(t, start.Before(start))
}

func TestTimeOfDayScanValue(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("14:45:00"))
	assert.Equal(t, "14:45", tod.String())

	require.NoError(t, tod.Scan(time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15", tod.String())

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:15:00", v)

	assert.Error(t, tod.Scan(42))
}

func TestTimeOfDayJSON(t *testing.T) {
	tod, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(b))

	var back TimeOfDay
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod, back)
}
