package utils

import "time"

// CalculateAge returns whole years as elapsed days divided by 365.
// Stored goals were derived with this approximation; keep it.
func CalculateAge(birthday time.Time, now time.Time) int {
	days := int(now.Sub(birthday).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}
