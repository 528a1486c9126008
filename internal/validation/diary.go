package validation

import (
	"fmt"
	"time"

	pkgapi "github.com/playlog/playlog/pkg/api"
)

// Rating bounds of a diary entry.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidateRating checks that a diary rating is within 1-5.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateDiaryStatus checks that status is one of the accepted values.
func ValidateDiaryStatus(status string) error {
	switch status {
	case pkgapi.DiaryStatusCompleted, pkgapi.DiaryStatusInProgress, pkgapi.DiaryStatusDropped:
		return nil
	}
	return fmt.Errorf("status must be one of: %s, %s, %s",
		pkgapi.DiaryStatusCompleted, pkgapi.DiaryStatusInProgress, pkgapi.DiaryStatusDropped)
}

// ValidatePlayedAt checks that the played date is an ISO date (YYYY-MM-DD).
func ValidatePlayedAt(playedAt string) error {
	if playedAt == "" {
		return fmt.Errorf("played date cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", playedAt); err != nil {
		return fmt.Errorf("played date must be in YYYY-MM-DD format")
	}
	return nil
}
