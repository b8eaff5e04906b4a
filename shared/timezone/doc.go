// Package timezone pins every calendar calculation to the facility's local zone.
//
// Booking dates, opening hours and report periods are all wall-clock values, so
// they must be interpreted in one location. The zone comes from APP_TIMEZONE
// (an IANA name such as "Asia/Jakarta" or "Europe/Madrid") and falls back to UTC.
//
//	now := timezone.Now()
//	day, err := timezone.Parse("2006-01-02", "2025-06-01")
//	midnight := timezone.StartOfDay(now)
package timezone
