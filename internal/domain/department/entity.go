package department

import (
	"time"
)

type Department struct {
	ID      string
	Name    string
	Manager string

	CreatedAt time.Time
	UpdatedAt time.Time
}
