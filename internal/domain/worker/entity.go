package worker

import "time"

const (
	EstadoActive   = "activo"
	EstadoInactive = "inactivo"
)

type Worker struct {
	ID         string
	DNI        string
	Names      string
	Surnames   string
	Email      *string
	AreaID     string
	ScheduleID *string
	PhotoURL   *string
	BadgeCode  string
	Estado     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for listings
	AreaName     *string
	ScheduleName *string
}

func (w Worker) FullName() string {
	return w.Names + " " + w.Surnames
}
