package translator

import (
	"strings"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/theme"
)

// statusNowPlaying is the fixed content string media notifications display
// instead of their track text.
const statusNowPlaying = "Now Playing"

// StandardTranslator renders generic, call and media notifications.
type StandardTranslator struct {
	Base
}

// Options carries the call-site configuration the translator does not derive
// from the notification itself.
type Options struct {
	HideReplies          bool
	UseAppOpenForReplies bool
	Rule                 *theme.ThemeRule
}

// ComposeDisplayContent implements the fixed display-content rule:
//   - media template → the fixed "Now Playing" string, regardless of text
//   - call with subtext → "text • subtext"
//   - subtext present → "text • subtext", or just the subtext when text is empty
//   - otherwise the text unchanged
func ComposeDisplayContent(isMedia, isCall bool, text, subText string) string {
	switch {
	case isMedia:
		return statusNowPlaying
	case isCall && subText != "":
		return text + " • " + subText
	case subText != "":
		if text != "" {
			return text + " • " + subText
		}
		return subText
	default:
		return text
	}
}

// IsMediaTemplate reports whether a platform template string marks a
// media-style notification.
func IsMediaTemplate(template string) bool {
	return strings.Contains(template, "MediaStyle")
}

// Translate assembles the island payload for one notification.
func (st *StandardTranslator) Translate(
	n *common.RawNotification,
	title, text, picKey string,
	cfg common.IslandConfig,
	t *theme.HyperTheme,
	opts Options,
) common.IslandData {
	isMedia := IsMediaTemplate(n.Template)
	isCall := n.Category == common.CategoryCall

	displayTitle := title
	displayContent := ComposeDisplayContent(isMedia, isCall, text, n.SubText)

	builder := common.NewBuilder("bridge_"+n.PackageName, displayTitle)

	isFloat := cfg.IsFloat != nil && *cfg.IsFloat
	showShade := cfg.IsShowShade == nil || *cfg.IsShowShade
	builder.SetEnableFloat(isFloat)
	builder.SetFirstFloat(isFloat)
	builder.SetShowShade(showShade)
	builder.SetReopen(true)
	if cfg.Timeout != nil {
		builder.SetTimeout(*cfg.Timeout)
	}

	builder.AddPicture(st.ResolveIcon(n, picKey))
	builder.AddPicture(TransparentPicture(hiddenPixelKey))

	var extraActions theme.ActionMap
	if opts.Rule != nil && opts.Rule.Overrides != nil {
		extraActions = opts.Rule.Overrides.Actions
	}
	bridgeActions := st.ExtractBridgeActions(
		n, t, extraActions,
		theme.ActionModeBoth,
		opts.HideReplies,
		opts.UseAppOpenForReplies,
	)

	// Shade representation
	builder.SetBaseInfo(2, displayTitle, displayContent)
	builder.SetIconTextInfo(picKey, displayTitle, displayContent)

	// Island layout: media shows only the icon slot; everything else pairs
	// the icon with a hidden-pixel right slot carrying the text.
	if isMedia {
		builder.SetBigIsland(
			&common.ImageTextInfo{Type: 1, Pic: common.PicInfo{Type: 1, Pic: picKey}, Text: common.TextInfo{}},
			nil,
		)
	} else {
		builder.SetBigIsland(
			&common.ImageTextInfo{Type: 1, Pic: common.PicInfo{Type: 1, Pic: picKey}, Text: common.TextInfo{}},
			&common.ImageTextInfo{Type: 1, Pic: common.PicInfo{Type: 1, Pic: hiddenPixelKey}, Text: common.TextInfo{Title: displayTitle, Content: displayContent}},
		)
	}

	builder.SetSmallIsland(picKey)

	if len(bridgeActions) > 0 {
		buttons := make([]common.IslandButton, 0, len(bridgeActions))
		for _, ba := range bridgeActions {
			buttons = append(buttons, ba.Action)
		}
		builder.SetButtons(buttons...)
		for _, button := range buttons {
			builder.AddHiddenAction(button)
		}
		for _, ba := range bridgeActions {
			if ba.Image != nil {
				builder.AddPicture(*ba.Image)
			}
		}
	}

	highlight := ResolveColor(t, n.PackageName, defaultHighlight)
	if opts.Rule != nil && opts.Rule.Overrides != nil && opts.Rule.Overrides.HighlightColor != nil {
		highlight = *opts.Rule.Overrides.HighlightColor
	}
	builder.SetHighlightColor(highlight)

	return builder.Build()
}
