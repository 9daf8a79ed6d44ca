package settings

// SanitizeTimeout normalizes a stored timeout to seconds on every read.
// Legacy rows hold milliseconds; any value strictly greater than 60 is
// treated as such and divided by 1000. Absent values default to 5 seconds.
// This is display-time normalization only, storage is never rewritten.
func SanitizeTimeout(raw *int64) int64 {
	if raw == nil {
		return 5
	}
	if *raw > 60 {
		return *raw / 1000
	}
	return *raw
}

// Effective resolves one field through the app-override → global →
// hard-default precedence chain. Both levels are independently nullable.
func Effective[T any](app, global *T, def T) T {
	if app != nil {
		return *app
	}
	if global != nil {
		return *global
	}
	return def
}
