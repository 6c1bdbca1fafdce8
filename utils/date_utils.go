package utils

import (
	"time"
)

// IsValidDate accepts the ISO forms the application form submits for
// preferred_date.
func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	formats := []string{
		"2006-01-02",
		time.RFC3339,
	}

	for _, format := range formats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

// IsValidTime accepts the HH:MM form the form's time picker submits.
func IsValidTime(timeStr string) bool {
	if timeStr == "" {
		return false
	}

	_, err := time.Parse("15:04", timeStr)
	return err == nil
}
