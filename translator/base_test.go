package translator

import (
	"archive/zip"
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/theme"
)

type memStore struct{ id string }

func (s *memStore) ActiveThemeID() (string, error)   { return s.id, nil }
func (s *memStore) SetActiveThemeID(id string) error { s.id = id; return nil }

func strPtr(s string) *string { return &s }

func pngBytes(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(8, 8, c), imaging.PNG))
	return buf.Bytes()
}

// installTheme stands up a repository with one installed, activated theme.
func installTheme(t *testing.T, config string, files map[string][]byte) *theme.Repository {
	t.Helper()
	repo := theme.NewRepository(t.TempDir(), &memStore{})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("theme_config.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(config))
	require.NoError(t, err)
	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	id, err := repo.InstallTheme(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, repo.ActivateTheme(id))
	return repo
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#AB1234", ResolveColor(nil, "com.example", "#AB1234"))

	th := &theme.HyperTheme{
		Global: theme.GlobalConfig{HighlightColor: strPtr("#111111")},
		Apps: map[string]theme.AppThemeOverride{
			"com.example.mail": {HighlightColor: strPtr("#222222")},
		},
	}
	assert.Equal(t, "#222222", ResolveColor(th, "com.example.mail", "#000000"))
	assert.Equal(t, "#111111", ResolveColor(th, "com.example.other", "#000000"))

	th.Global.HighlightColor = nil
	assert.Equal(t, "#000000", ResolveColor(th, "com.example.other", "#000000"))
}

func TestResolveActionIconSubstringMatch(t *testing.T) {
	icon := pngBytes(t, color.NRGBA{B: 255, A: 255})
	repo := installTheme(t, `{
		"id": "glass",
		"meta": {"name": "Glass"},
		"apps": {
			"com.example.mail": {
				"actions": {
					"reply": {"icon": {"type": "LOCAL_FILE", "value": "icons/reply.png"}}
				}
			}
		}
	}`, map[string][]byte{"icons/reply.png": icon})

	b := &Base{Repo: repo}
	th := repo.ActiveTheme()

	// Keyword matching is case-insensitive substring over the action title.
	assert.NotNil(t, b.ResolveActionIcon(th, "com.example.mail", "Quick Reply"))
	assert.NotNil(t, b.ResolveActionIcon(th, "com.example.mail", "REPLY ALL"))
	assert.Nil(t, b.ResolveActionIcon(th, "com.example.mail", "Archive"))

	// Only the configured package matches.
	assert.Nil(t, b.ResolveActionIcon(th, "com.example.other", "Quick Reply"))
	assert.Nil(t, b.ResolveActionIcon(nil, "com.example.mail", "Quick Reply"))
}

func TestMatchActionIconFirstMatchDecides(t *testing.T) {
	repo := installTheme(t, `{"id":"glass","meta":{"name":"Glass"}}`, nil)
	b := &Base{Repo: repo}

	// The first matching entry wins even when its icon is absent; later
	// entries are never consulted.
	actions := theme.ActionMap{
		{Keyword: "reply", Config: theme.ActionConfig{}},
		{Keyword: "repl", Config: theme.ActionConfig{
			Icon: &theme.ThemeResource{Type: theme.ResourceLocalFile, Value: "icons/x.png"},
		}},
	}
	assert.Nil(t, b.matchActionIcon(actions, "Quick Reply"))

	// Non-local icon types fall back to the platform icon.
	preset := theme.ActionMap{
		{Keyword: "call", Config: theme.ActionConfig{
			Icon: &theme.ThemeResource{Type: theme.ResourcePresetDrawable, Value: "call"},
		}},
	}
	assert.Nil(t, b.matchActionIcon(preset, "Call back"))
}

func TestNotificationImagePrecedence(t *testing.T) {
	picture := pngBytes(t, color.NRGBA{R: 255, A: 255})
	large := pngBytes(t, color.NRGBA{G: 255, A: 255})
	small := pngBytes(t, color.NRGBA{B: 255, A: 255})

	n := &common.RawNotification{
		Picture:   picture,
		LargeIcon: large,
		SmallIcon: small,
	}
	img := NotificationImage(n)
	require.NotNil(t, img)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)

	// An undecodable candidate yields to the next one.
	n.Picture = []byte("garbage")
	img = NotificationImage(n)
	require.NotNil(t, img)
	_, g, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), g)

	// Call notifications consult the person icons before the large icon.
	n.Category = common.CategoryCall
	person := pngBytes(t, color.NRGBA{R: 255, G: 255, A: 255})
	n.MessagingPerson = &common.Person{Name: "John", Icon: person}
	img = NotificationImage(n)
	require.NotNil(t, img)
	r, g, _, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0xFFFF), g)

	// An undecodable messaging-person icon falls through to the first
	// listed person rather than skipping the person step entirely.
	n.MessagingPerson.Icon = []byte("broken")
	n.People = []common.Person{{Name: "Jane", Icon: pngBytes(t, color.NRGBA{B: 255, G: 255, A: 255})}}
	n.LargeIcon = large
	img = NotificationImage(n)
	require.NotNil(t, img)
	_, g, bl, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), g)
	assert.Equal(t, uint32(0xFFFF), bl)

	// Nothing decodable at all.
	assert.Nil(t, NotificationImage(&common.RawNotification{Picture: []byte("junk")}))
}

func TestEncodePictureNormalizesSize(t *testing.T) {
	big := imaging.New(512, 256, color.NRGBA{R: 10, A: 255})
	pic := EncodePicture("k", big)
	require.NotEmpty(t, pic.Data)

	decoded, err := imaging.Decode(bytes.NewReader(pic.Data))
	require.NoError(t, err)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), iconSize)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), iconSize)

	// Small images are not upscaled.
	small := imaging.New(8, 8, color.NRGBA{R: 10, A: 255})
	pic = EncodePicture("k", small)
	decoded, err = imaging.Decode(bytes.NewReader(pic.Data))
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())

	assert.Empty(t, EncodePicture("k", nil).Data)
}

func TestExtractBridgeActionsReplyHandling(t *testing.T) {
	repo := installTheme(t, `{"id":"glass","meta":{"name":"Glass"}}`, nil)
	b := &Base{Repo: repo}

	n := &common.RawNotification{
		Key:           "0|com.example.mail|1",
		PackageName:   "com.example.mail",
		ContentIntent: "intent://open",
		Actions: []common.NotificationAction{
			{Title: "Reply", ActionIntent: "intent://reply", RemoteInputs: []string{"text"}},
			{Title: "Archive", ActionIntent: "intent://archive"},
		},
	}

	// hideReplies drops the remote-input action entirely.
	got := b.ExtractBridgeActions(n, nil, nil, theme.ActionModeBoth, true, false)
	require.Len(t, got, 1)
	assert.Equal(t, "Archive", got[0].Action.Title)

	// useAppOpenForReplies redirects the reply tap to the content intent.
	got = b.ExtractBridgeActions(n, nil, nil, theme.ActionModeBoth, false, true)
	require.Len(t, got, 2)
	assert.Equal(t, "intent://open", got[0].Action.ActionIntent)
	assert.Equal(t, "intent://archive", got[1].Action.ActionIntent)

	// Neither flag keeps the original intent.
	got = b.ExtractBridgeActions(n, nil, nil, theme.ActionModeBoth, false, false)
	require.Len(t, got, 2)
	assert.Equal(t, "intent://reply", got[0].Action.ActionIntent)
}

func TestExtractBridgeActionsIconMode(t *testing.T) {
	repo := installTheme(t, `{"id":"glass","meta":{"name":"Glass"}}`, nil)
	b := &Base{Repo: repo}

	n := &common.RawNotification{
		Key:         "k",
		PackageName: "com.example.mail",
		Actions: []common.NotificationAction{
			{Title: "Archive", ActionIntent: "intent://archive", Icon: pngBytes(t, color.NRGBA{A: 255})},
		},
	}

	got := b.ExtractBridgeActions(n, nil, nil, theme.ActionModeIcon, false, false)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Action.Title)
	require.NotNil(t, got[0].Image)
	assert.Equal(t, got[0].Image.Key, got[0].Action.Pic)

	// Text mode keeps the title and skips icon loading.
	got = b.ExtractBridgeActions(n, nil, nil, theme.ActionModeText, false, false)
	require.Len(t, got, 1)
	assert.Equal(t, "Archive", got[0].Action.Title)
	assert.Nil(t, got[0].Image)
}

func TestExtractBridgeActionsRuleActionsWin(t *testing.T) {
	icon := pngBytes(t, color.NRGBA{R: 1, A: 255})
	repo := installTheme(t, `{
		"id": "glass",
		"meta": {"name": "Glass"},
		"apps": {
			"com.example.mail": {
				"actions": {"archive": {"icon": {"type": "LOCAL_FILE", "value": "icons/app.png"}}}
			}
		}
	}`, map[string][]byte{
		"icons/app.png":  icon,
		"icons/rule.png": pngBytes(t, color.NRGBA{G: 1, A: 255}),
	})
	b := &Base{Repo: repo}
	th := repo.ActiveTheme()

	n := &common.RawNotification{
		Key:         "k",
		PackageName: "com.example.mail",
		Actions:     []common.NotificationAction{{Title: "Archive", ActionIntent: "intent://a"}},
	}

	ruleActions := theme.ActionMap{{
		Keyword: "archive",
		Config: theme.ActionConfig{
			Icon: &theme.ThemeResource{Type: theme.ResourceLocalFile, Value: "icons/rule.png"},
		},
	}}

	got := b.ExtractBridgeActions(n, th, ruleActions, theme.ActionModeBoth, false, false)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Image)

	decoded, err := imaging.Decode(bytes.NewReader(got[0].Image.Data))
	require.NoError(t, err)
	_, g, _, _ := decoded.At(0, 0).RGBA()
	assert.NotZero(t, g) // the rule icon, not the per-app one
}

func TestResolveIconFallsBack(t *testing.T) {
	b := &Base{}
	pic := b.ResolveIcon(&common.RawNotification{}, "notif_icon")
	assert.Equal(t, "notif_icon", pic.Key)
	assert.NotEmpty(t, pic.Data) // the 1x1 transparent fallback still encodes
}
