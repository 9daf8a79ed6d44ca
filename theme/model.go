package theme

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HyperTheme is the root theme document, the entire contents of a
// theme_config.json inside a theme package.
type HyperTheme struct {
	ID   string        `json:"id"` // unique, assigned at import/creation, immutable
	Meta ThemeMetadata `json:"meta"`

	Global GlobalConfig `json:"global"`

	DefaultActions    ActionMap        `json:"default_actions,omitempty"`
	DefaultProgress   ProgressModule   `json:"default_progress,omitempty"`
	DefaultNavigation NavigationModule `json:"default_navigation,omitempty"`

	// Apps is keyed by package name. A package with no entry falls back fully
	// to the global/default sections.
	Apps map[string]AppThemeOverride `json:"apps,omitempty"`

	Rules []ThemeRule `json:"rules,omitempty"`
}

type ThemeMetadata struct {
	Name            string `json:"name"`
	Author          string `json:"author"`
	Version         int    `json:"version,omitempty"`
	Description     string `json:"description,omitempty"`
	ProviderPackage string `json:"provider_package,omitempty"`
	ProviderURL     string `json:"provider_url,omitempty"`
}

type GlobalConfig struct {
	HighlightColor     *string      `json:"highlight_color,omitempty"`
	BackgroundColor    *string      `json:"background_color,omitempty"`
	TextColor          *string      `json:"text_color,omitempty"`
	DefaultActionStyle ActionConfig `json:"default_action_style,omitempty"`
}

// AppThemeOverride is one per-package override block. Every field is
// independently nullable; nil defers to the global/default level.
type AppThemeOverride struct {
	HighlightColor *string           `json:"highlight_color,omitempty"`
	Actions        ActionMap         `json:"actions,omitempty"`
	Progress       *ProgressModule   `json:"progress,omitempty"`
	Navigation     *NavigationModule `json:"navigation,omitempty"`
}

type ActionConfig struct {
	Mode            ActionButtonMode `json:"mode,omitempty"`
	Icon            *ThemeResource   `json:"icon,omitempty"`
	BackgroundColor *string          `json:"background_color,omitempty"`
	TintColor       *string          `json:"tint_color,omitempty"`
	TextColor       *string          `json:"text_color,omitempty"`
}

type ProgressModule struct {
	ActiveColor    *string        `json:"active_color,omitempty"`
	ActiveIcon     *ThemeResource `json:"active_icon,omitempty"`
	FinishedColor  *string        `json:"finished_color,omitempty"`
	FinishedIcon   *ThemeResource `json:"finished_icon,omitempty"`
	ShowPercentage *bool          `json:"show_percentage,omitempty"`
}

type NavigationModule struct {
	ProgressBarColor *string        `json:"progress_bar_color,omitempty"`
	ForwardIcon      *ThemeResource `json:"pic_forward,omitempty"`
	EndIcon          *ThemeResource `json:"pic_end,omitempty"`
	SwapSides        bool           `json:"swap_sides,omitempty"`
}

// ThemeRule is one conditional override. Present conditions are AND-combined.
type ThemeRule struct {
	ID           string            `json:"id"`
	Comment      string            `json:"comment,omitempty"`
	Priority     int               `json:"priority"`
	Conditions   RuleConditions    `json:"conditions"`
	TargetLayout string            `json:"target_layout,omitempty"`
	Overrides    *AppThemeOverride `json:"overrides,omitempty"`
}

// UnmarshalJSON applies the document default priority (100) when the field
// is absent.
func (r *ThemeRule) UnmarshalJSON(data []byte) error {
	type alias ThemeRule
	tmp := alias{Priority: 100}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*r = ThemeRule(tmp)
	return nil
}

type RuleConditions struct {
	PackageName        *string `json:"package_name,omitempty"`
	TitleRegex         *string `json:"title_regex,omitempty"`
	TextRegex          *string `json:"text_regex,omitempty"`
	ExternalStateKey   *string `json:"external_state_key,omitempty"`
	ExternalStateValue *string `json:"external_state_value,omitempty"`
}

// ThemeResource is a tagged reference to an image asset. Resolution never
// fails loudly; an unresolvable resource degrades to no icon.
type ThemeResource struct {
	Type  ResourceType `json:"type"`
	Value string       `json:"value"`
}

type ResourceType string

const (
	ResourcePresetDrawable ResourceType = "PRESET_DRAWABLE"
	ResourceLocalFile      ResourceType = "LOCAL_FILE"
	ResourceURIContent     ResourceType = "URI_CONTENT"
)

// UnmarshalJSON tolerates unknown type strings, substituting the preset
// variant so a stale document never fails to parse.
func (t *ResourceType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ResourceType(s) {
	case ResourcePresetDrawable, ResourceLocalFile, ResourceURIContent:
		*t = ResourceType(s)
	default:
		*t = ResourcePresetDrawable
	}
	return nil
}

type ActionButtonMode string

const (
	ActionModeIcon ActionButtonMode = "ICON"
	ActionModeText ActionButtonMode = "TEXT"
	ActionModeBoth ActionButtonMode = "BOTH"
)

func (m *ActionButtonMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ActionButtonMode(s) {
	case ActionModeIcon, ActionModeText, ActionModeBoth:
		*m = ActionButtonMode(s)
	default:
		*m = ActionModeIcon
	}
	return nil
}

// Mode returns the configured display mode, defaulting to ICON.
func (c ActionConfig) DisplayMode() ActionButtonMode {
	if c.Mode == "" {
		return ActionModeIcon
	}
	return c.Mode
}

// Validate performs the install-time schema checks. The id may be empty at
// this point; installation assigns one.
func (t *HyperTheme) Validate() error {
	if t.Meta.Name == "" {
		return errors.New("theme config is missing the required meta.name field")
	}
	if t.ID != "" && !isValidThemeID(t.ID) {
		return fmt.Errorf("theme id %q is invalid: only letters, digits, underscores and hyphens are allowed", t.ID)
	}
	return nil
}

// isValidThemeID rejects ids that cannot serve as a storage directory name.
func isValidThemeID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
