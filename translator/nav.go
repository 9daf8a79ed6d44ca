package translator

import (
	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/theme"
)

// Bundle keys the navigation layout references. Theme packages override them
// by shipping icons/<key>.png resources.
const (
	picForwardKey = "pic_forward"
	picEndKey     = "pic_end"
)

// NavTranslator renders turn-by-turn navigation notifications. The two big
// island slots are filled per the effective navigation layout: each side
// shows either the distance/ETA summary or the current instruction.
type NavTranslator struct {
	Base
}

// slotText picks the text a navigation slot displays for a content kind.
func slotText(kind common.NavContent, nav *common.NavigationInfo) common.TextInfo {
	switch kind {
	case common.NavContentInstruction:
		return common.TextInfo{Title: nav.Instruction}
	default:
		return common.TextInfo{Title: nav.Distance, Content: nav.ETA}
	}
}

// Translate assembles the navigation island payload.
func (nt *NavTranslator) Translate(
	n *common.RawNotification,
	title string,
	cfg common.IslandConfig,
	t *theme.HyperTheme,
	left, right common.NavContent,
	opts Options,
) common.IslandData {
	nav := n.Navigation
	if nav == nil {
		nav = &common.NavigationInfo{Instruction: n.Text}
	}

	builder := common.NewBuilder("bridge_"+n.PackageName, title)

	isFloat := cfg.IsFloat != nil && *cfg.IsFloat
	showShade := cfg.IsShowShade == nil || *cfg.IsShowShade
	builder.SetEnableFloat(isFloat)
	builder.SetFirstFloat(isFloat)
	builder.SetShowShade(showShade)
	builder.SetReopen(true)
	if cfg.Timeout != nil {
		builder.SetTimeout(*cfg.Timeout)
	}

	// Navigation module: per-app override first, then the theme default.
	module := navigationModule(t, n.PackageName)

	iconKey := picForwardKey
	var iconResource *theme.ThemeResource
	if nav.IsEnd {
		iconKey = picEndKey
		if module != nil {
			iconResource = module.EndIcon
		}
	} else if module != nil {
		iconResource = module.ForwardIcon
	}

	// Maneuver icon: theme resource → agent-supplied bitmap → app icon.
	var pic common.IslandPicture
	if iconResource != nil && nt.Repo != nil {
		if img := nt.Repo.ResourceImage(*iconResource); img != nil {
			pic = EncodePicture(iconKey, img)
		}
	}
	if len(pic.Data) == 0 {
		if img := DecodeImage(nav.ManeuverIcon); img != nil {
			pic = EncodePicture(iconKey, img)
		} else {
			pic = nt.ResolveIcon(n, iconKey)
		}
	}
	builder.AddPicture(pic)
	builder.AddPicture(TransparentPicture(hiddenPixelKey))

	if module != nil && module.SwapSides {
		left, right = right, left
	}

	leftSlot := &common.ImageTextInfo{
		Type: 1,
		Pic:  common.PicInfo{Type: 1, Pic: iconKey},
		Text: slotText(left, nav),
	}
	rightSlot := &common.ImageTextInfo{
		Type: 1,
		Pic:  common.PicInfo{Type: 1, Pic: hiddenPixelKey},
		Text: slotText(right, nav),
	}
	builder.SetBigIsland(leftSlot, rightSlot)
	builder.SetSmallIsland(iconKey)

	content := nav.Instruction
	if nav.Distance != "" {
		content = nav.Distance + " • " + nav.Instruction
	}
	builder.SetBaseInfo(2, title, content)
	builder.SetIconTextInfo(iconKey, title, content)

	highlight := ResolveColor(t, n.PackageName, defaultHighlight)
	if module != nil && module.ProgressBarColor != nil {
		highlight = *module.ProgressBarColor
	}
	if opts.Rule != nil && opts.Rule.Overrides != nil && opts.Rule.Overrides.HighlightColor != nil {
		highlight = *opts.Rule.Overrides.HighlightColor
	}
	builder.SetHighlightColor(highlight)

	return builder.Build()
}

// navigationModule resolves the effective navigation module for a package:
// app override → theme default → nil.
func navigationModule(t *theme.HyperTheme, pkg string) *theme.NavigationModule {
	if t == nil {
		return nil
	}
	if override, ok := t.Apps[pkg]; ok && override.Navigation != nil {
		return override.Navigation
	}
	// The zero default module carries no icons; treat it as present so
	// swap_sides and colors from the document still apply.
	module := t.DefaultNavigation
	return &module
}
