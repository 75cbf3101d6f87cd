package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeUnmarshalEpochSeconds(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`1700000000`), &ft))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ft.Time.UTC())
}

func TestFlexTimeUnmarshalEpochMillis(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`1700000000000`), &ft))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ft.Time.UTC())
}

func TestFlexTimeUnmarshalISOString(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01T10:30:00Z"`), &ft))
	assert.Equal(t, time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC), ft.Time.UTC())
}

func TestFlexTimeUnmarshalSecondsNanosPair(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"seconds":1700000000,"nanoseconds":0}`), &ft))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ft.Time.UTC())
}

func TestFlexTimeClockMatchesLocalTime(t *testing.T) {
	ft := NewFlexTime(time.Unix(1700000000, 0))
	want := time.Unix(1700000000, 0).Local().Format("15:04")
	assert.Equal(t, want, ft.Clock())
}

func TestFlexTimeClockEmptyForZero(t *testing.T) {
	var ft FlexTime
	assert.Equal(t, "", ft.Clock())
}

func TestFlexTimeUnmarshalRejectsGarbage(t *testing.T) {
	var ft FlexTime
	assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &ft))
}

func TestFlexTimeMarshalRoundTrip(t *testing.T) {
	ft := NewFlexTime(time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC))
	data, err := json.Marshal(ft)
	require.NoError(t, err)

	var back FlexTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ft.Time.Equal(back.Time))
}
