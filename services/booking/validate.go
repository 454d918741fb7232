package booking

import "time"

// ValidateTimeRange checks a start/end pair for temporal legality relative to now.
// The same rules govern painter availability creation and customer booking
// creation: both timestamps must be set, the range must be strictly ordered, and
// the start must not lie in the past.
func ValidateTimeRange(now, start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return NewInvalidInput("start and end timestamps are required")
	}
	if !start.Before(end) {
		return NewInvalidRange("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if start.Before(now) {
		return NewPastSchedule("start %s is in the past", start.Format(time.RFC3339))
	}
	return nil
}
