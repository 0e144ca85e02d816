package schedule

import (
	"encoding/json"
	"sort"
	"time"
)

// WeekdaySet is a set of ISO weekdays (1=Monday … 7=Sunday). The ISO
// convention is canonical throughout the module; conversion from
// time.Weekday happens only in ISOWeekday.
type WeekdaySet []int

// DefaultWorkingDays is Monday through Friday.
func DefaultWorkingDays() WeekdaySet {
	return WeekdaySet{1, 2, 3, 4, 5}
}

func (s WeekdaySet) Contains(day int) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// ParseWeekdaySet parses the JSON-encoded dias_laborales column. The
// legacy data contains malformed values; ok=false tells the caller to
// fall back to a default set instead of failing the request.
func ParseWeekdaySet(raw string) (WeekdaySet, bool) {
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, false
	}
	if len(days) == 0 {
		return nil, false
	}
	seen := make(map[int]bool, len(days))
	set := make(WeekdaySet, 0, len(days))
	for _, d := range days {
		if d < 1 || d > 7 {
			return nil, false
		}
		if !seen[d] {
			seen[d] = true
			set = append(set, d)
		}
	}
	sort.Ints(set)
	return set, true
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int(s))
}

// ISOWeekday returns t's weekday in the ISO convention, 1=Monday
// through 7=Sunday.
func ISOWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
