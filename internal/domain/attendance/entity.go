package attendance

import "time"

// EntryStatus classifies punctuality of a clock-in, using the values
// persisted in registros_asistencia.estado_entrada.
type EntryStatus string

const (
	EntryOnTime EntryStatus = "puntual"
	EntryLate   EntryStatus = "tardanza"
	EntryAbsent EntryStatus = "ausente" // written by the nightly job, never by a scan
)

// ExitStatus classifies a clock-out against the scheduled exit time.
type ExitStatus string

const (
	ExitNormal   ExitStatus = "normal"
	ExitEarly    ExitStatus = "salida_temprano"
	ExitOvertime ExitStatus = "horas_extra"
)

// Method is how the record was captured.
type Method string

const (
	MethodQR     Method = "qr"
	MethodManual Method = "manual"
)

// EventKind tells the caller which half of the day the scan recorded.
type EventKind string

const (
	EventClockIn  EventKind = "entrada"
	EventClockOut EventKind = "salida"
)

// Record is one worker-day attendance row. At most one exists per
// (worker, date); the check-out fields stay nil until the second scan.
type Record struct {
	ID          string
	WorkerID    string
	Date        time.Time // attendance day, local calendar date
	CheckIn     *time.Time
	CheckOut    *time.Time
	LateMinutes int
	EntryStatus EntryStatus
	ExitStatus  *ExitStatus
	Method      Method
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for listings
	WorkerDNI    *string
	WorkerName   *string
	ScheduleName *string
}
