package common

// NavContent selects what a navigation island slot displays.
type NavContent string

const (
	NavContentDistanceETA NavContent = "DISTANCE_ETA"
	NavContentInstruction NavContent = "INSTRUCTION"
)

// ParseNavContent maps a stored string to a NavContent, substituting def for
// anything it no longer recognizes.
func ParseNavContent(s string, def NavContent) NavContent {
	switch NavContent(s) {
	case NavContentDistanceETA, NavContentInstruction:
		return NavContent(s)
	}
	return def
}

// LimitMode controls how concurrent islands are limited.
type LimitMode string

const (
	LimitModeMostRecent LimitMode = "MOST_RECENT"
	LimitModePriority   LimitMode = "PRIORITY"
)

func ParseLimitMode(s string) LimitMode {
	switch LimitMode(s) {
	case LimitModeMostRecent, LimitModePriority:
		return LimitMode(s)
	}
	return LimitModeMostRecent
}

// NotificationType classifies an incoming notification for per-app filtering.
type NotificationType string

const (
	TypeStandard   NotificationType = "STANDARD"
	TypeMedia      NotificationType = "MEDIA"
	TypeCall       NotificationType = "CALL"
	TypeNavigation NotificationType = "NAVIGATION"
	TypeProgress   NotificationType = "PROGRESS"
)

// AllNotificationTypes lists every type, in declaration order. A package with
// no stored filter is treated as having all types enabled.
func AllNotificationTypes() []NotificationType {
	return []NotificationType{TypeStandard, TypeMedia, TypeCall, TypeNavigation, TypeProgress}
}

func ParseNotificationType(s string) NotificationType {
	switch NotificationType(s) {
	case TypeStandard, TypeMedia, TypeCall, TypeNavigation, TypeProgress:
		return NotificationType(s)
	}
	return TypeStandard
}
