package settings

import (
	"errors"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/database/dbcore"
	"github.com/D4vidDf/HyperBridge/database/models"
	"gorm.io/gorm"
)

// GetApp returns the override row for a package. A package with no row
// resolves to an empty override (all fields deferring to global).
func GetApp(pkg string) (models.AppSetting, error) {
	db := dbcore.GetDBInstance()
	var app models.AppSetting
	err := db.Where("package_name = ?", pkg).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AppSetting{PackageName: pkg}, nil
	}
	if err != nil {
		return models.AppSetting{PackageName: pkg}, err
	}
	return app, nil
}

// appSnapshot is the fault-absorbing read used by the pipeline.
func appSnapshot(pkg string) models.AppSetting {
	app, err := GetApp(pkg)
	if err != nil {
		return models.AppSetting{PackageName: pkg}
	}
	return app
}

// SaveApp upserts a per-package override row.
func SaveApp(app models.AppSetting) error {
	if app.PackageName == "" {
		return errors.New("package name required")
	}
	db := dbcore.GetDBInstance()
	return db.Save(&app).Error
}

// DeleteApp removes all overrides for a package.
func DeleteApp(pkg string) error {
	db := dbcore.GetDBInstance()
	return db.Where("package_name = ?", pkg).Delete(&models.AppSetting{}).Error
}

// ListApps returns every package that has an override row.
func ListApps() ([]models.AppSetting, error) {
	db := dbcore.GetDBInstance()
	var apps []models.AppSetting
	if err := db.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// AppIslandConfig returns the per-package island override with each field
// nullable as stored. A present timeout is sanitized; an absent one stays nil
// so the global value applies.
func AppIslandConfig(pkg string) common.IslandConfig {
	app := appSnapshot(pkg)
	cfg := common.IslandConfig{
		IsFloat:     app.Float,
		IsShowShade: app.Shade,
	}
	if app.Timeout != nil {
		t := SanitizeTimeout(app.Timeout)
		cfg.Timeout = &t
	}
	return cfg
}

// EffectiveIslandConfig merges the per-package override over the global
// configuration. The result has every field resolved.
func EffectiveIslandConfig(pkg string) common.IslandConfig {
	app := AppIslandConfig(pkg)
	global := GlobalIslandConfig()
	f := Effective(app.IsFloat, global.IsFloat, true)
	s := Effective(app.IsShowShade, global.IsShowShade, true)
	t := Effective(app.Timeout, global.Timeout, int64(5))
	return common.IslandConfig{IsFloat: &f, IsShowShade: &s, Timeout: &t}
}

// AppNavLayout returns the per-package navigation slot overrides, each nil
// when unset or unparsable.
func AppNavLayout(pkg string) (*common.NavContent, *common.NavContent) {
	app := appSnapshot(pkg)
	var left, right *common.NavContent
	if app.NavLeft != "" {
		if v := common.ParseNavContent(app.NavLeft, ""); v != "" {
			left = &v
		}
	}
	if app.NavRight != "" {
		if v := common.ParseNavContent(app.NavRight, ""); v != "" {
			right = &v
		}
	}
	return left, right
}

// EffectiveNavLayout merges the per-package navigation layout over the global
// one.
func EffectiveNavLayout(pkg string) (common.NavContent, common.NavContent) {
	appLeft, appRight := AppNavLayout(pkg)
	globalLeft, globalRight := GlobalNavLayout()
	left := Effective(appLeft, &globalLeft, common.NavContentDistanceETA)
	right := Effective(appRight, &globalRight, common.NavContentInstruction)
	return left, right
}

// AppTypes returns the enabled notification types for a package. No stored
// filter means every type is enabled.
func AppTypes(pkg string) []common.NotificationType {
	app := appSnapshot(pkg)
	if app.Types == "" {
		return common.AllNotificationTypes()
	}
	names := splitSet(app.Types)
	types := make([]common.NotificationType, 0, len(names))
	for _, n := range names {
		types = append(types, common.ParseNotificationType(n))
	}
	return types
}

// IsTypeEnabled reports whether a notification type passes the per-package
// filter.
func IsTypeEnabled(pkg string, t common.NotificationType) bool {
	for _, enabled := range AppTypes(pkg) {
		if enabled == t {
			return true
		}
	}
	return false
}

// AppBlockedTerms returns the per-package blocked-term set.
func AppBlockedTerms(pkg string) []string {
	return splitSet(appSnapshot(pkg).BlockedTerms)
}
