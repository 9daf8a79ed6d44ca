package settings

import (
	"fmt"
	"strings"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/database/dbcore"
	"github.com/D4vidDf/HyperBridge/database/models"
)

// Get returns the single settings row, creating it on first access.
func Get() (models.Settings, error) {
	db := dbcore.GetDBInstance()
	var s models.Settings
	// Only one record
	if err := db.Where(models.Settings{ID: 1}).FirstOrCreate(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

// Snapshot is the read path used by the translation pipeline: a storage
// failure yields an empty settings value instead of an error, so translation
// proceeds with built-in defaults.
func Snapshot() models.Settings {
	s, err := Get()
	if err != nil {
		return models.Settings{ID: 1}
	}
	return s
}

// Save persists a full settings row.
func Save(s models.Settings) error {
	db := dbcore.GetDBInstance()
	s.ID = 1
	old := Snapshot()
	if err := db.Save(&s).Error; err != nil {
		return err
	}
	publishEvent(old, s)
	return nil
}

// Update applies a partial update from a column→value map and notifies
// subscribers. Unknown columns fail the whole update.
func Update(data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}
	db := dbcore.GetDBInstance()
	old, err := Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := db.Model(&models.Settings{}).Where("id = ?", 1).Updates(data).Error; err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	updated := Snapshot()
	publishEvent(old, updated)
	return nil
}

// --- theme activation persistence ---

// ActiveThemeStore adapts the settings row to the theme repository's
// activation-persistence interface.
type ActiveThemeStore struct{}

func (ActiveThemeStore) ActiveThemeID() (string, error) {
	s, err := Get()
	if err != nil {
		return "", err
	}
	return s.ActiveTheme, nil
}

func (ActiveThemeStore) SetActiveThemeID(id string) error {
	return Update(map[string]interface{}{"active_theme": id})
}

// --- global island / navigation reads ---

// GlobalIslandConfig resolves the global float/shade/timeout snapshot with
// built-in defaults substituted for unset columns: float=true, shade=true,
// timeout=5s. The stored timeout is sanitized on every read.
func GlobalIslandConfig() common.IslandConfig {
	s := Snapshot()
	f := true
	if s.GlobalFloat != nil {
		f = *s.GlobalFloat
	}
	sh := true
	if s.GlobalShade != nil {
		sh = *s.GlobalShade
	}
	t := SanitizeTimeout(s.GlobalTimeout)
	return common.IslandConfig{IsFloat: &f, IsShowShade: &sh, Timeout: &t}
}

// GlobalNavLayout returns the global left/right slot contents, substituting
// the documented defaults for unset or unknown stored values.
func GlobalNavLayout() (common.NavContent, common.NavContent) {
	s := Snapshot()
	left := common.ParseNavContent(s.NavLeft, common.NavContentDistanceETA)
	right := common.ParseNavContent(s.NavRight, common.NavContentInstruction)
	return left, right
}

// --- allowed packages ---

func AllowedPackages() []string {
	return splitSet(Snapshot().AllowedPackages)
}

func IsPackageAllowed(pkg string) bool {
	for _, p := range AllowedPackages() {
		if p == pkg {
			return true
		}
	}
	return false
}

// ToggleApp adds or removes a package from the allowed set.
func ToggleApp(pkg string, enabled bool) error {
	s, err := Get()
	if err != nil {
		return err
	}
	set := splitSet(s.AllowedPackages)
	next := make([]string, 0, len(set)+1)
	for _, p := range set {
		if p != pkg {
			next = append(next, p)
		}
	}
	if enabled {
		next = append(next, pkg)
	}
	return Update(map[string]interface{}{"allowed_packages": joinSet(next)})
}

// --- priority / limit mode ---

func GetLimitMode() common.LimitMode {
	return common.ParseLimitMode(Snapshot().LimitMode)
}

func SetLimitMode(mode common.LimitMode) error {
	return Update(map[string]interface{}{"limit_mode": string(mode)})
}

func AppPriorityOrder() []string {
	return splitSet(Snapshot().PriorityOrder)
}

func SetAppPriorityOrder(order []string) error {
	return Update(map[string]interface{}{"priority_order": joinSet(order)})
}

// --- blocked terms ---

func GlobalBlockedTerms() []string {
	return splitSet(Snapshot().GlobalBlockedTerms)
}

func SetGlobalBlockedTerms(terms []string) error {
	return Update(map[string]interface{}{"global_blocked_terms": joinSet(terms)})
}

// splitSet decodes a comma-joined stored set, dropping empty entries.
func splitSet(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinSet(items []string) string {
	return strings.Join(items, ",")
}
