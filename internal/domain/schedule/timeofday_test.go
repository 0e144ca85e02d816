package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:00", want: "08:00:00"},
		{in: "08:00:00", want: "08:00:00"},
		{in: "17:30:15", want: "17:30:00"}, // seconds are dropped
		{in: "00:00", want: "00:00:00"},
		{in: "23:59", want: "23:59:00"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "mediodia", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDayAt(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)

	ref := time.Date(2025, 3, 10, 14, 45, 12, 0, time.UTC)
	anchored := tod.At(ref)

	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), anchored)
}
