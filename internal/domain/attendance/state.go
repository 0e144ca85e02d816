package attendance

// DayState is the per-(worker, date) state machine derived from the
// persisted row. The legacy system encoded it implicitly in nullable
// columns; here it is computed once per scan so the transition table
// stays exhaustive:
//
//	NoRecord  --clock-in-->  Entered
//	Entered   --clock-out--> Completed
//	Completed --scan-->      rejected
type DayState int

const (
	StateNoRecord DayState = iota
	StateEntered
	StateCompleted
)

func (s DayState) String() string {
	switch s {
	case StateNoRecord:
		return "no_record"
	case StateEntered:
		return "entered"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// StateOf derives the day state from today's record, if any.
func StateOf(rec *Record) DayState {
	switch {
	case rec == nil:
		return StateNoRecord
	case rec.CheckOut == nil:
		return StateEntered
	default:
		return StateCompleted
	}
}
