package domain

import "time"

// Show is immutable and defined by the catalog, never created at runtime.
type Show struct {
	ID    string
	Title string
	Date  time.Time
}
