package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		EntryDate Date `json:"entry_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"entry_date":"2024-01-05"}`), &payload))
	assert.Equal(t, NewDate(2024, time.January, 5), payload.EntryDate)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entry_date":"2024-01-05"}`, string(out))

	err = json.Unmarshal([]byte(`{"entry_date":"05/01/2024"}`), &payload)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"time in another zone", time.Date(2024, 1, 5, 0, 0, 0, 0, time.FixedZone("X", 3600))},
		{"sqlite timestamp text", "2024-01-05 00:00:00+00:00"},
		{"plain date bytes", []byte("2024-01-05")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, "2024-01-05", d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("bad"))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.February, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), v)
}
