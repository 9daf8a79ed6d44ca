package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/theme"
)

func TestComposeDisplayContent(t *testing.T) {
	tests := []struct {
		name     string
		isMedia  bool
		isCall   bool
		text     string
		subText  string
		expected string
	}{
		{"media ignores text", true, false, "Song Title", "Artist", "Now Playing"},
		{"call with subtext", false, true, "John", "Mobile", "John • Mobile"},
		{"call without subtext", false, true, "John", "", "John"},
		{"subtext joined", false, false, "2 new messages", "Work", "2 new messages • Work"},
		{"subtext only", false, false, "", "Work", "Work"},
		{"plain text", false, false, "hello", "", "hello"},
		{"everything empty", false, false, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComposeDisplayContent(tt.isMedia, tt.isCall, tt.text, tt.subText))
		})
	}
}

func TestIsMediaTemplate(t *testing.T) {
	assert.True(t, IsMediaTemplate("android.app.Notification$MediaStyle"))
	assert.True(t, IsMediaTemplate("androidx.media.app.NotificationCompat$MediaStyle"))
	assert.False(t, IsMediaTemplate("android.app.Notification$BigTextStyle"))
	assert.False(t, IsMediaTemplate(""))
}

func boolPtr(v bool) *bool    { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestStandardTranslate(t *testing.T) {
	repo := installTheme(t, `{"id":"glass","meta":{"name":"Glass"},"global":{"highlight_color":"#123456"}}`, nil)
	st := &StandardTranslator{Base{Repo: repo}}

	n := &common.RawNotification{
		Key:         "0|com.example.mail|1",
		PackageName: "com.example.mail",
		Title:       "Alice",
		Text:        "lunch?",
		SubText:     "Work",
		Actions: []common.NotificationAction{
			{Title: "Archive", ActionIntent: "intent://archive"},
		},
	}
	cfg := common.IslandConfig{IsFloat: boolPtr(true), IsShowShade: boolPtr(false), Timeout: int64Ptr(10)}

	data := st.Translate(n, n.Title, n.Text, "notif_icon", cfg, repo.ActiveTheme(), Options{})

	assert.Equal(t, "bridge_com.example.mail", data.Params.ID)
	assert.Equal(t, "Alice", data.Params.Title)
	assert.True(t, data.Params.EnableFloat)
	assert.True(t, data.Params.FirstFloat)
	assert.False(t, data.Params.ShowShade)
	assert.True(t, data.Params.Reopen)
	assert.Equal(t, int64(10), data.Params.Timeout)
	assert.Equal(t, "#123456", data.Params.HighlightColor)

	require.NotNil(t, data.Params.BaseInfo)
	assert.Equal(t, "lunch? • Work", data.Params.BaseInfo.Content)
	assert.Equal(t, "notif_icon", data.Params.BaseInfo.PicKey)

	require.NotNil(t, data.Params.BigIsland)
	require.NotNil(t, data.Params.BigIsland.Right)
	assert.Equal(t, "lunch? • Work", data.Params.BigIsland.Right.Text.Content)

	require.NotNil(t, data.Params.SmallIsland)
	assert.Equal(t, "notif_icon", data.Params.SmallIsland.Pic)

	require.Len(t, data.Params.Buttons, 1)
	assert.Equal(t, "Archive", data.Params.Buttons[0].Title)
	assert.Len(t, data.Params.HiddenActions, 1)

	// The main icon and the hidden-pixel spacer are in the bundle.
	assert.Contains(t, data.Resources, "notif_icon")
	assert.Contains(t, data.Resources, "hidden_pixel")
}

func TestStandardTranslateDefaults(t *testing.T) {
	st := &StandardTranslator{}
	n := &common.RawNotification{Key: "k", PackageName: "com.example", Title: "t", Text: "x"}

	data := st.Translate(n, "t", "x", "notif_icon", common.IslandConfig{}, nil, Options{})

	// With nothing configured: float off, shade on, no timeout, built-in
	// highlight.
	assert.False(t, data.Params.EnableFloat)
	assert.True(t, data.Params.ShowShade)
	assert.Zero(t, data.Params.Timeout)
	assert.Equal(t, defaultHighlight, data.Params.HighlightColor)
}

func TestStandardTranslateMediaLayout(t *testing.T) {
	st := &StandardTranslator{}
	n := &common.RawNotification{
		Key:         "k",
		PackageName: "com.example.music",
		Template:    "android.app.Notification$MediaStyle",
		Title:       "Song",
		Text:        "Artist",
	}

	data := st.Translate(n, "Song", "Artist", "notif_icon", common.IslandConfig{}, nil, Options{})

	require.NotNil(t, data.Params.BaseInfo)
	assert.Equal(t, "Now Playing", data.Params.BaseInfo.Content)

	// Media islands show only the icon slot.
	require.NotNil(t, data.Params.BigIsland)
	assert.NotNil(t, data.Params.BigIsland.Left)
	assert.Nil(t, data.Params.BigIsland.Right)
}

func TestStandardTranslateRuleOverridesHighlight(t *testing.T) {
	repo := installTheme(t, `{"id":"glass","meta":{"name":"Glass"},"global":{"highlight_color":"#123456"}}`, nil)
	st := &StandardTranslator{Base{Repo: repo}}
	n := &common.RawNotification{Key: "k", PackageName: "com.example", Title: "t", Text: "x"}

	rule := &theme.ThemeRule{
		ID:        "urgent",
		Overrides: &theme.AppThemeOverride{HighlightColor: strPtr("#FF0000")},
	}
	data := st.Translate(n, "t", "x", "notif_icon", common.IslandConfig{}, repo.ActiveTheme(), Options{Rule: rule})
	assert.Equal(t, "#FF0000", data.Params.HighlightColor)
}
