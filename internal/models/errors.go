package models

import "fmt"

var (
	errEmptyTitle  = fmt.Errorf("movie title is required")
	errRatingRange = fmt.Errorf("movie rating must be between 1 and 10")
)
