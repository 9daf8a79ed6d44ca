package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D4vidDf/HyperBridge/cmd/flags"
	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/database/models"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hyperbridge-settings-*")
	if err != nil {
		panic(err)
	}
	flags.DatabaseType = "sqlite"
	flags.DatabaseFile = filepath.Join(dir, "test.db")
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestGetCreatesSingletonRow(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)
	assert.Equal(t, uint(1), cfg.ID)

	// A second read must come back to the same row.
	again, err := Get()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
}

func TestTimeoutSanitizedOnRead(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)

	// A legacy millisecond value stays in storage as written but every
	// read reports seconds.
	ms := int64(5000)
	cfg.GlobalTimeout = &ms
	require.NoError(t, Save(cfg))

	ic := GlobalIslandConfig()
	require.NotNil(t, ic.Timeout)
	assert.Equal(t, int64(5), *ic.Timeout)

	stored, err := Get()
	require.NoError(t, err)
	require.NotNil(t, stored.GlobalTimeout)
	assert.Equal(t, int64(5000), *stored.GlobalTimeout)
}

func TestGlobalIslandConfigDefaults(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)
	cfg.GlobalFloat = nil
	cfg.GlobalShade = nil
	cfg.GlobalTimeout = nil
	require.NoError(t, Save(cfg))

	ic := GlobalIslandConfig()
	require.NotNil(t, ic.IsFloat)
	require.NotNil(t, ic.IsShowShade)
	require.NotNil(t, ic.Timeout)
	assert.True(t, *ic.IsFloat)
	assert.True(t, *ic.IsShowShade)
	assert.Equal(t, int64(5), *ic.Timeout)
}

func TestEffectiveIslandConfigMerge(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)
	gf := false
	gt := int64(30)
	cfg.GlobalFloat = &gf
	cfg.GlobalShade = nil
	cfg.GlobalTimeout = &gt
	require.NoError(t, Save(cfg))

	af := true
	require.NoError(t, SaveApp(models.AppSetting{
		PackageName: "com.example.mail",
		Float:       &af,
	}))

	ic := EffectiveIslandConfig("com.example.mail")
	assert.True(t, *ic.IsFloat)        // app override beats global
	assert.True(t, *ic.IsShowShade)    // hard default, nothing set
	assert.Equal(t, int64(30), *ic.Timeout)

	// A package without an override row inherits the globals.
	other := EffectiveIslandConfig("com.example.other")
	assert.False(t, *other.IsFloat)
	assert.Equal(t, int64(30), *other.Timeout)
}

func TestAllowedPackages(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)
	cfg.AllowedPackages = ""
	require.NoError(t, Save(cfg))

	require.NoError(t, ToggleApp("com.example.chat", true))
	require.NoError(t, ToggleApp("com.example.mail", true))
	assert.True(t, IsPackageAllowed("com.example.chat"))
	assert.False(t, IsPackageAllowed("com.example.unknown"))

	require.NoError(t, ToggleApp("com.example.chat", false))
	assert.False(t, IsPackageAllowed("com.example.chat"))
	assert.True(t, IsPackageAllowed("com.example.mail"))
}

func TestAppTypesDefaultsToAll(t *testing.T) {
	require.NoError(t, SaveApp(models.AppSetting{
		PackageName: "com.example.media",
		Types:       "MEDIA,PROGRESS",
	}))

	assert.True(t, IsTypeEnabled("com.example.media", common.TypeMedia))
	assert.False(t, IsTypeEnabled("com.example.media", common.TypeCall))

	// No stored filter means every type is enabled.
	assert.ElementsMatch(t, common.AllNotificationTypes(), AppTypes("com.example.noconfig"))
	assert.True(t, IsTypeEnabled("com.example.noconfig", common.TypeNavigation))
}

func TestActiveThemeStoreRoundTrip(t *testing.T) {
	var store ActiveThemeStore
	require.NoError(t, store.SetActiveThemeID("dark-glass"))

	id, err := store.ActiveThemeID()
	require.NoError(t, err)
	assert.Equal(t, "dark-glass", id)

	require.NoError(t, store.SetActiveThemeID(""))
	id, err = store.ActiveThemeID()
	require.NoError(t, err)
	assert.Empty(t, id)
}
