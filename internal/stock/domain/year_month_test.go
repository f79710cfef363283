package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    YearMonth
		wantErr bool
	}{
		{input: "2024-01", want: YearMonth{Year: 2024, Month: 1}},
		{input: "2024-12", want: YearMonth{Year: 2024, Month: 12}},
		{input: "2024-13", want: YearMonth{Year: 2024, Month: 13}},
		{input: " 2024 - 3 ", want: YearMonth{Year: 2024, Month: 3}},
		{input: "2024", wantErr: true},
		{input: "abcd-01", wantErr: true},
		{input: "2024-ab", wantErr: true},
		{input: "2024-01-05", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYearMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, "Invalid format. Use YYYY-MM", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearMonthRange(t *testing.T) {
	from, to, ok := YearMonth{Year: 2024, Month: 1}.Range()
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", from.String())
	assert.Equal(t, "2024-02-01", to.String())

	from, to, ok = YearMonth{Year: 2023, Month: 12}.Range()
	require.True(t, ok)
	assert.Equal(t, "2023-12-01", from.String())
	assert.Equal(t, "2024-01-01", to.String())

	_, _, ok = YearMonth{Year: 2024, Month: 13}.Range()
	assert.False(t, ok)
	_, _, ok = YearMonth{Year: 0, Month: 1}.Range()
	assert.False(t, ok)
}
