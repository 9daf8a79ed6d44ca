package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D4vidDf/HyperBridge/common"
)

func navNotification() *common.RawNotification {
	return &common.RawNotification{
		Key:         "0|com.example.maps|1",
		PackageName: "com.example.maps",
		Category:    common.CategoryNavigation,
		Title:       "Navigating",
		Navigation: &common.NavigationInfo{
			Instruction: "Turn left onto Main St",
			Distance:    "300 m",
			ETA:         "12 min",
		},
	}
}

func TestNavTranslateSlotLayout(t *testing.T) {
	nt := &NavTranslator{}
	n := navNotification()

	data := nt.Translate(n, n.Title, common.IslandConfig{}, nil,
		common.NavContentDistanceETA, common.NavContentInstruction, Options{})

	require.NotNil(t, data.Params.BigIsland)
	require.NotNil(t, data.Params.BigIsland.Left)
	require.NotNil(t, data.Params.BigIsland.Right)
	assert.Equal(t, "300 m", data.Params.BigIsland.Left.Text.Title)
	assert.Equal(t, "12 min", data.Params.BigIsland.Left.Text.Content)
	assert.Equal(t, "Turn left onto Main St", data.Params.BigIsland.Right.Text.Title)

	require.NotNil(t, data.Params.BaseInfo)
	assert.Equal(t, "300 m • Turn left onto Main St", data.Params.BaseInfo.Content)

	require.NotNil(t, data.Params.SmallIsland)
	assert.Equal(t, "pic_forward", data.Params.SmallIsland.Pic)
	assert.Contains(t, data.Resources, "pic_forward")
}

func TestNavTranslateEndOfRoute(t *testing.T) {
	nt := &NavTranslator{}
	n := navNotification()
	n.Navigation.IsEnd = true

	data := nt.Translate(n, n.Title, common.IslandConfig{}, nil,
		common.NavContentDistanceETA, common.NavContentInstruction, Options{})
	assert.Equal(t, "pic_end", data.Params.SmallIsland.Pic)
}

func TestNavTranslateThemeModule(t *testing.T) {
	repo := installTheme(t, `{
		"id": "glass",
		"meta": {"name": "Glass"},
		"apps": {
			"com.example.maps": {
				"navigation": {"progress_bar_color": "#00FF00", "swap_sides": true}
			}
		}
	}`, nil)
	nt := &NavTranslator{Base{Repo: repo}}
	n := navNotification()

	data := nt.Translate(n, n.Title, common.IslandConfig{}, repo.ActiveTheme(),
		common.NavContentDistanceETA, common.NavContentInstruction, Options{})

	assert.Equal(t, "#00FF00", data.Params.HighlightColor)

	// swap_sides puts the instruction on the left.
	assert.Equal(t, "Turn left onto Main St", data.Params.BigIsland.Left.Text.Title)
	assert.Equal(t, "300 m", data.Params.BigIsland.Right.Text.Title)
}

func TestNavTranslateWithoutNavigationExtras(t *testing.T) {
	nt := &NavTranslator{}
	n := &common.RawNotification{
		Key:         "k",
		PackageName: "com.example.maps",
		Category:    common.CategoryNavigation,
		Title:       "Navigating",
		Text:        "Continue straight",
	}

	data := nt.Translate(n, n.Title, common.IslandConfig{}, nil,
		common.NavContentDistanceETA, common.NavContentInstruction, Options{})

	// The plain text stands in for the missing instruction extras.
	assert.Equal(t, "Continue straight", data.Params.BigIsland.Right.Text.Title)
	assert.Equal(t, "Continue straight", data.Params.BaseInfo.Content)
}
