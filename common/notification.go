package common

// Notification categories mirrored from the platform constants the agent
// forwards verbatim.
const (
	CategoryCall       = "call"
	CategoryNavigation = "navigation"
	CategoryProgress   = "progress"
	CategoryTransport  = "transport"
)

// Person is a contact attached to a messaging or call notification.
type Person struct {
	Name string `json:"name"`
	Icon []byte `json:"icon,omitempty"`
}

// NotificationAction is one action button of a platform notification.
// RemoteInputs carries the ids of free-text inputs the action expects; a
// non-empty list marks the action as a reply-style action.
type NotificationAction struct {
	Title        string   `json:"title"`
	Icon         []byte   `json:"icon,omitempty"`
	ActionIntent string   `json:"action_intent"`
	RemoteInputs []string `json:"remote_inputs,omitempty"`
}

// ProgressInfo is the progress bar state of a progress-style notification.
type ProgressInfo struct {
	Max           int  `json:"max"`
	Current       int  `json:"current"`
	Indeterminate bool `json:"indeterminate"`
}

// NavigationInfo carries the turn-by-turn extras of a navigation notification.
type NavigationInfo struct {
	Instruction  string `json:"instruction"`
	Distance     string `json:"distance"`
	ETA          string `json:"eta"`
	ManeuverIcon []byte `json:"maneuver_icon,omitempty"`
	IsEnd        bool   `json:"is_end"`
}

// RawNotification is a platform notification as posted by the device agent.
// All image candidates are raw encoded image bytes (PNG/JPEG/WebP); any of
// them may be absent or undecodable and the translator must cope.
type RawNotification struct {
	Key         string `json:"key"`
	PackageName string `json:"package_name"`
	PostTime    int64  `json:"post_time"`
	Category    string `json:"category,omitempty"`
	Template    string `json:"template,omitempty"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	SubText     string `json:"sub_text,omitempty"`

	Picture         []byte   `json:"picture,omitempty"`
	MessagingPerson *Person  `json:"messaging_person,omitempty"`
	People          []Person `json:"people,omitempty"`
	LargeIcon       []byte   `json:"large_icon,omitempty"`
	LargeIconBitmap []byte   `json:"large_icon_bitmap,omitempty"`
	SmallIcon       []byte   `json:"small_icon,omitempty"`
	AppIcon         []byte   `json:"app_icon,omitempty"`

	ContentIntent string               `json:"content_intent,omitempty"`
	Actions       []NotificationAction `json:"actions,omitempty"`

	Progress   *ProgressInfo   `json:"progress,omitempty"`
	Navigation *NavigationInfo `json:"navigation,omitempty"`

	// ExternalState is arbitrary device state the agent snapshots at post
	// time, matched against rule conditions.
	ExternalState map[string]string `json:"external_state,omitempty"`
}

// IslandConfig is the resolved float/shade/timeout configuration for one
// notification. Each field is independently nullable: nil means "inherit from
// the next-broader scope". Instances are fresh snapshots, never mutated.
type IslandConfig struct {
	IsFloat     *bool  `json:"is_float,omitempty"`
	IsShowShade *bool  `json:"is_show_shade,omitempty"`
	Timeout     *int64 `json:"timeout,omitempty"`
}
