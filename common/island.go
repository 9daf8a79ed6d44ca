package common

// Island payload schema. This is the contract the render sink consumes: a
// structured parameter document plus a resource bundle of named images. Field
// names follow the vendor parameter format.

type PicInfo struct {
	Type int    `json:"type"`
	Pic  string `json:"pic"`
}

type TextInfo struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ImageTextInfo struct {
	Type int      `json:"type"`
	Pic  PicInfo  `json:"picInfo"`
	Text TextInfo `json:"textInfo"`
}

type BaseInfo struct {
	Type    int    `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	PicKey  string `json:"pic,omitempty"`
}

type BigIslandInfo struct {
	Left  *ImageTextInfo `json:"imageTextInfoLeft,omitempty"`
	Right *ImageTextInfo `json:"imageTextInfoRight,omitempty"`
}

type SmallIslandInfo struct {
	Pic string `json:"pic"`
}

// IslandButton is a renderer-ready action button.
type IslandButton struct {
	Key              string `json:"key"`
	Title            string `json:"title"`
	Pic              string `json:"pic,omitempty"`
	ActionIntent     string `json:"actionIntent"`
	ActionIntentType int    `json:"actionIntentType"`
}

// IslandPicture is one named image payload of the resource bundle.
type IslandPicture struct {
	Key  string `json:"key"`
	Data []byte `json:"data"`
}

// BridgeAction pairs a renderer-ready button with the custom icon extracted
// for it, if any. Instances live only for the duration of one translation.
type BridgeAction struct {
	Action IslandButton
	Image  *IslandPicture
}

// IslandParams is the structured half of the island payload.
type IslandParams struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	EnableFloat    bool             `json:"enableFloat"`
	FirstFloat     bool             `json:"firstFloat"`
	ShowShade      bool             `json:"showShade"`
	Reopen         bool             `json:"reopen"`
	Timeout        int64            `json:"timeout"`
	HighlightColor string           `json:"highlightColor,omitempty"`
	BaseInfo       *BaseInfo        `json:"baseInfo,omitempty"`
	BigIsland      *BigIslandInfo   `json:"bigIsland,omitempty"`
	SmallIsland    *SmallIslandInfo `json:"smallIsland,omitempty"`
	Buttons        []IslandButton   `json:"buttons,omitempty"`
	HiddenActions  []IslandButton   `json:"hiddenActions,omitempty"`
}

// IslandData is the complete translated payload handed to the render sink.
type IslandData struct {
	Params    IslandParams      `json:"params"`
	Resources map[string][]byte `json:"resources"`
}

// Builder assembles an IslandData the way the vendor SDK builder does:
// pictures are registered by key, layout slots reference them by key, and
// Build snapshots the result.
type Builder struct {
	params    IslandParams
	resources map[string][]byte
}

func NewBuilder(id, title string) *Builder {
	return &Builder{
		params: IslandParams{
			ID:    id,
			Title: title,
		},
		resources: make(map[string][]byte),
	}
}

func (b *Builder) SetEnableFloat(v bool) *Builder {
	b.params.EnableFloat = v
	return b
}

func (b *Builder) SetFirstFloat(v bool) *Builder {
	b.params.FirstFloat = v
	return b
}

func (b *Builder) SetShowShade(v bool) *Builder {
	b.params.ShowShade = v
	return b
}

func (b *Builder) SetReopen(v bool) *Builder {
	b.params.Reopen = v
	return b
}

func (b *Builder) SetTimeout(seconds int64) *Builder {
	b.params.Timeout = seconds
	return b
}

func (b *Builder) SetHighlightColor(hex string) *Builder {
	b.params.HighlightColor = hex
	return b
}

// AddPicture registers an image payload. A picture with empty data is
// ignored so a failed resource lookup never produces a broken bundle entry.
func (b *Builder) AddPicture(pic IslandPicture) *Builder {
	if pic.Key == "" || len(pic.Data) == 0 {
		return b
	}
	b.resources[pic.Key] = pic.Data
	return b
}

func (b *Builder) SetBaseInfo(infoType int, title, content string) *Builder {
	b.params.BaseInfo = &BaseInfo{Type: infoType, Title: title, Content: content}
	return b
}

func (b *Builder) SetIconTextInfo(picKey, title, content string) *Builder {
	if b.params.BaseInfo == nil {
		b.params.BaseInfo = &BaseInfo{Title: title, Content: content}
	}
	b.params.BaseInfo.PicKey = picKey
	return b
}

func (b *Builder) SetBigIsland(left, right *ImageTextInfo) *Builder {
	b.params.BigIsland = &BigIslandInfo{Left: left, Right: right}
	return b
}

func (b *Builder) SetSmallIsland(picKey string) *Builder {
	b.params.SmallIsland = &SmallIslandInfo{Pic: picKey}
	return b
}

func (b *Builder) SetButtons(buttons ...IslandButton) *Builder {
	b.params.Buttons = append([]IslandButton(nil), buttons...)
	return b
}

// AddHiddenAction registers a button for click dispatch without showing it.
func (b *Builder) AddHiddenAction(button IslandButton) *Builder {
	b.params.HiddenActions = append(b.params.HiddenActions, button)
	return b
}

func (b *Builder) Build() IslandData {
	resources := make(map[string][]byte, len(b.resources))
	for k, v := range b.resources {
		resources[k] = v
	}
	return IslandData{Params: b.params, Resources: resources}
}
