package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	now := time.Now()
	exitStatus := ExitNormal

	tests := []struct {
		name string
		rec  *Record
		want DayState
	}{
		{name: "no record", rec: nil, want: StateNoRecord},
		{
			name: "entered",
			rec:  &Record{CheckIn: &now},
			want: StateEntered,
		},
		{
			name: "completed",
			rec:  &Record{CheckIn: &now, CheckOut: &now, ExitStatus: &exitStatus},
			want: StateCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.rec))
		})
	}
}

func TestDayStateString(t *testing.T) {
	assert.Equal(t, "no_record", StateNoRecord.String())
	assert.Equal(t, "entered", StateEntered.String())
	assert.Equal(t, "completed", StateCompleted.String())
}
