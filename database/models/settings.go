package models

// Settings is the single-row global configuration table. Nullable columns
// mean "not set, inherit the built-in default"; readers substitute defaults,
// storage is never rewritten on read.
type Settings struct {
	ID              uint   `json:"id,omitempty" gorm:"primaryKey;autoIncrement"` // always 1
	SetupComplete   bool   `json:"setup_complete" gorm:"default:false"`
	LastSeenVersion int    `json:"last_seen_version" gorm:"default:0"`
	AllowCors       bool   `json:"allow_cors" gorm:"column:allow_cors;default:false"`
	LimitMode       string `json:"limit_mode" gorm:"type:varchar(32);default:'MOST_RECENT'"`
	PriorityOrder   string `json:"priority_order" gorm:"type:text"`   // comma-joined package names
	AllowedPackages string `json:"allowed_packages" gorm:"type:text"` // comma-joined set
	// Global island configuration
	GlobalFloat   *bool  `json:"global_float"`
	GlobalShade   *bool  `json:"global_shade"`
	GlobalTimeout *int64 `json:"global_timeout"` // legacy rows may hold milliseconds, sanitized on read
	// Navigation layout
	NavLeft  string `json:"nav_left" gorm:"type:varchar(32);default:''"`
	NavRight string `json:"nav_right" gorm:"type:varchar(32);default:''"`
	// Reply handling
	HideReplies          bool `json:"hide_replies" gorm:"default:false"`
	UseAppOpenForReplies bool `json:"use_app_open_for_replies" gorm:"default:true"`
	// Filtering
	GlobalBlockedTerms string `json:"global_blocked_terms" gorm:"type:text"` // comma-joined set
	// Theming
	ActiveTheme string `json:"active_theme" gorm:"type:varchar(100);default:''"` // empty = system default
	CreatedAt   LocalTime
	UpdatedAt   LocalTime
}

// AppSetting is one per-package override row. Nullable columns mean "no
// override at this level, defer to the global value".
type AppSetting struct {
	PackageName string `json:"package_name" gorm:"primaryKey;type:varchar(255)"`
	// Island overrides
	Float   *bool  `json:"float"`
	Shade   *bool  `json:"shade"`
	Timeout *int64 `json:"timeout"` // legacy rows may hold milliseconds, sanitized on read
	// Navigation overrides; empty string = no override
	NavLeft  string `json:"nav_left" gorm:"type:varchar(32);default:''"`
	NavRight string `json:"nav_right" gorm:"type:varchar(32);default:''"`
	// Enabled notification types, comma-joined; empty = all types
	Types string `json:"types" gorm:"type:text"`
	// Per-app blocked terms, comma-joined
	BlockedTerms string `json:"blocked_terms" gorm:"type:text"`
	CreatedAt    LocalTime
	UpdatedAt    LocalTime
}
