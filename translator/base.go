package translator

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/theme"
)

// iconSize is the edge length every bundled image is normalized to.
const iconSize = 96

// hiddenPixelKey names the transparent spacer picture the big-island right
// slot uses.
const hiddenPixelKey = "hidden_pixel"

// defaultHighlight is the call-site default highlight color when neither the
// app override nor the theme global sets one.
const defaultHighlight = "#3482FF"

// Base carries the helpers shared by every translator variant.
type Base struct {
	Repo *theme.Repository
}

// ResolveColor resolves the effective highlight color:
// app override → global → caller default. No theme means the default.
func ResolveColor(t *theme.HyperTheme, pkg, defaultHex string) string {
	if t == nil {
		return defaultHex
	}
	if pkg != "" {
		if override, ok := t.Apps[pkg]; ok && override.HighlightColor != nil {
			return *override.HighlightColor
		}
	}
	if t.Global.HighlightColor != nil {
		return *t.Global.HighlightColor
	}
	return defaultHex
}

// ResolveActionIcon looks up a per-app custom icon for an action button by
// case-insensitive substring match of the action title against the configured
// keywords, in document order. Only LOCAL_FILE icons resolve; anything else
// returns nil so the caller falls back to the platform-supplied icon.
func (b *Base) ResolveActionIcon(t *theme.HyperTheme, pkg, actionTitle string) image.Image {
	if t == nil || b.Repo == nil {
		return nil
	}
	override, ok := t.Apps[pkg]
	if !ok {
		return nil
	}
	return b.matchActionIcon(override.Actions, actionTitle)
}

// matchActionIcon runs the keyword match against one ordered action list.
func (b *Base) matchActionIcon(actions theme.ActionMap, actionTitle string) image.Image {
	if b.Repo == nil || len(actions) == 0 {
		return nil
	}
	lowered := strings.ToLower(actionTitle)
	for _, entry := range actions {
		if !strings.Contains(lowered, strings.ToLower(entry.Keyword)) {
			continue
		}
		if entry.Config.Icon == nil {
			return nil
		}
		if entry.Config.Icon.Type != theme.ResourceLocalFile {
			return nil
		}
		return b.Repo.ResourceImage(*entry.Config.Icon)
	}
	return nil
}

// ThemeImage resolves a conventional icons/<key>.png resource from the
// active theme.
func (b *Base) ThemeImage(t *theme.HyperTheme, resourceKey string) image.Image {
	if t == nil || b.Repo == nil {
		return nil
	}
	res := theme.ThemeResource{Type: theme.ResourceLocalFile, Value: "icons/" + resourceKey + ".png"}
	return b.Repo.ResourceImage(res)
}

// DecodeImage decodes raw image bytes, nil on any failure.
func DecodeImage(data []byte) image.Image {
	if len(data) == 0 {
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}

// NotificationImage picks the main notification image following the fixed
// precedence chain: picture extra → (calls) messaging person / first listed
// person → large icon → large-icon bitmap extra → small icon → the app's own
// icon. Every decode step is individually fault-isolated: a candidate that
// fails to decode simply yields to the next one. Returns nil when every step
// fails; the caller substitutes the built-in fallback glyph.
func NotificationImage(n *common.RawNotification) image.Image {
	if img := DecodeImage(n.Picture); img != nil {
		return img
	}

	if n.Category == common.CategoryCall {
		if n.MessagingPerson != nil {
			if img := DecodeImage(n.MessagingPerson.Icon); img != nil {
				return img
			}
		}
		if len(n.People) > 0 {
			if img := DecodeImage(n.People[0].Icon); img != nil {
				return img
			}
		}
	}

	if img := DecodeImage(n.LargeIcon); img != nil {
		return img
	}
	if img := DecodeImage(n.LargeIconBitmap); img != nil {
		return img
	}
	if img := DecodeImage(n.SmallIcon); img != nil {
		return img
	}
	return DecodeImage(n.AppIcon)
}

// ResolveIcon wraps NotificationImage into a bundle picture, substituting the
// fallback glyph when nothing decodes.
func (b *Base) ResolveIcon(n *common.RawNotification, picKey string) common.IslandPicture {
	img := NotificationImage(n)
	if img == nil {
		img = fallbackImage()
	}
	return EncodePicture(picKey, img)
}

// TransparentPicture returns the invisible spacer image.
func TransparentPicture(key string) common.IslandPicture {
	return EncodePicture(key, imaging.New(iconSize, iconSize, color.Transparent))
}

// EncodePicture normalizes an image to the bundle size and encodes it as PNG.
// Encoding failures degrade to an empty picture, which the builder drops.
func EncodePicture(key string, img image.Image) common.IslandPicture {
	if img == nil {
		return common.IslandPicture{Key: key}
	}
	bounds := img.Bounds()
	if bounds.Dx() > iconSize || bounds.Dy() > iconSize {
		img = imaging.Fit(img, iconSize, iconSize, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return common.IslandPicture{Key: key}
	}
	return common.IslandPicture{Key: key, Data: buf.Bytes()}
}

func fallbackImage() image.Image {
	return imaging.New(1, 1, color.Transparent)
}

// ExtractBridgeActions walks the notification's action list and produces the
// renderer-ready buttons.
//
// Reply-style actions (those expecting free-text remote input) are dropped
// entirely when hideReplies is set. When kept and useAppOpenForReplies is
// set, their tap target is redirected to the notification's content intent,
// since the island surface cannot host a text input.
//
// Icon resolution prefers a theme override (extraActions from a matched rule
// first, then the per-app map) over the platform-supplied icon.
func (b *Base) ExtractBridgeActions(
	n *common.RawNotification,
	t *theme.HyperTheme,
	extraActions theme.ActionMap,
	mode theme.ActionButtonMode,
	hideReplies bool,
	useAppOpenForReplies bool,
) []common.BridgeAction {
	if len(n.Actions) == 0 {
		return nil
	}

	var bridgeActions []common.BridgeAction
	for index, action := range n.Actions {
		hasRemoteInput := len(action.RemoteInputs) > 0
		if hasRemoteInput && hideReplies {
			continue
		}

		rawTitle := action.Title
		uniqueKey := fmt.Sprintf("act_%d_%d", hashKey(n.Key), index)

		finalTitle := rawTitle
		if mode == theme.ActionModeIcon {
			finalTitle = ""
		}
		shouldLoadIcon := mode == theme.ActionModeIcon || mode == theme.ActionModeBoth ||
			(mode == theme.ActionModeText && rawTitle == "")

		var pic *common.IslandPicture

		custom := b.matchActionIcon(extraActions, rawTitle)
		if custom == nil {
			custom = b.ResolveActionIcon(t, n.PackageName, rawTitle)
		}
		if custom != nil {
			p := EncodePicture(uniqueKey+"_icon", custom)
			pic = &p
		} else if shouldLoadIcon {
			if img := DecodeImage(action.Icon); img != nil {
				p := EncodePicture(uniqueKey+"_icon", img)
				pic = &p
			}
		}

		finalIntent := action.ActionIntent
		if hasRemoteInput && useAppOpenForReplies && n.ContentIntent != "" {
			finalIntent = n.ContentIntent
		}

		button := common.IslandButton{
			Key:              uniqueKey,
			Title:            finalTitle,
			ActionIntent:     finalIntent,
			ActionIntentType: 1,
		}
		if pic != nil {
			button.Pic = pic.Key
		}

		bridgeActions = append(bridgeActions, common.BridgeAction{Action: button, Image: pic})
	}
	return bridgeActions
}

func hashKey(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}
