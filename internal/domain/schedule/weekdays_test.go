package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekdaySet(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   WeekdaySet
		wantOK bool
	}{
		{name: "weekdays", raw: "[1,2,3,4,5]", want: WeekdaySet{1, 2, 3, 4, 5}, wantOK: true},
		{name: "weekend only", raw: "[6,7]", want: WeekdaySet{6, 7}, wantOK: true},
		{name: "unsorted input is sorted", raw: "[5,1,3]", want: WeekdaySet{1, 3, 5}, wantOK: true},
		{name: "duplicates collapse", raw: "[1,1,2]", want: WeekdaySet{1, 2}, wantOK: true},
		{name: "empty array", raw: "[]", wantOK: false},
		{name: "zero is out of range", raw: "[0,1]", wantOK: false},
		{name: "eight is out of range", raw: "[1,8]", wantOK: false},
		{name: "not JSON", raw: "lunes a viernes", wantOK: false},
		{name: "wrong type", raw: `["1","2"]`, wantOK: false},
		{name: "empty string", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWeekdaySet(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWeekdaySetContains(t *testing.T) {
	set := WeekdaySet{1, 3, 5}

	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(5))
	assert.False(t, set.Contains(2))
	assert.False(t, set.Contains(7))
}

func TestISOWeekday(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-16 a Sunday.
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, i+1, ISOWeekday(day), day.Format("2006-01-02"))
	}
}
