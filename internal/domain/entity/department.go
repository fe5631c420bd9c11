package entity

import "time"

// Department departamento administrativo o clínico del hospital.
type Department struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
