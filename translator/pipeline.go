package translator

import (
	"log"
	"strings"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/database/settings"
	"github.com/D4vidDf/HyperBridge/theme"
)

// Pipeline is the per-event translation entry point. It owns no state beyond
// the repository reference; each call is an independent pure transformation
// of (notification, current settings, active theme) into a payload.
type Pipeline struct {
	repo     *theme.Repository
	standard StandardTranslator
	nav      NavTranslator
}

func NewPipeline(repo *theme.Repository) *Pipeline {
	return &Pipeline{
		repo:     repo,
		standard: StandardTranslator{Base{Repo: repo}},
		nav:      NavTranslator{Base{Repo: repo}},
	}
}

// Classify maps a raw notification to its type for per-app filtering and
// translator dispatch.
func Classify(n *common.RawNotification) common.NotificationType {
	switch {
	case IsMediaTemplate(n.Template):
		return common.TypeMedia
	case n.Category == common.CategoryCall:
		return common.TypeCall
	case n.Category == common.CategoryNavigation || n.Navigation != nil:
		return common.TypeNavigation
	case n.Progress != nil:
		return common.TypeProgress
	default:
		return common.TypeStandard
	}
}

// Translate runs the full pipeline for one notification:
// extract → resolve configuration → evaluate rules → assemble.
//
// It is a total function: every internal failure is absorbed with a safe
// fallback. A nil result means the notification is suppressed (package not
// bridged, type filtered, or a blocked term matched) and nothing must reach
// the render sink.
func (p *Pipeline) Translate(n *common.RawNotification) *common.IslandData {
	if n == nil || n.PackageName == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Translation panic for %s: %v", n.PackageName, r)
		}
	}()

	pkg := n.PackageName
	if !settings.IsPackageAllowed(pkg) {
		return nil
	}

	kind := Classify(n)
	if !settings.IsTypeEnabled(pkg, kind) {
		return nil
	}

	if containsBlockedTerm(n.Title, n.Text, pkg) {
		return nil
	}

	cfg := settings.EffectiveIslandConfig(pkg)
	s := settings.Snapshot()
	opts := Options{
		HideReplies:          s.HideReplies,
		UseAppOpenForReplies: s.UseAppOpenForReplies,
	}

	activeTheme := p.repo.ActiveTheme()
	rule := theme.EvaluateRules(activeTheme, pkg, n.Title, n.Text, n.ExternalState)
	opts.Rule = rule

	layout := ""
	if rule != nil {
		layout = rule.TargetLayout
	}

	var data common.IslandData
	if kind == common.TypeNavigation && layout != "standard" || layout == "navigation" {
		left, right := settings.EffectiveNavLayout(pkg)
		data = p.nav.Translate(n, n.Title, cfg, activeTheme, left, right, opts)
	} else {
		data = p.standard.Translate(n, n.Title, n.Text, "notif_icon", cfg, activeTheme, opts)
	}
	return &data
}

// containsBlockedTerm checks title and text against the union of the global
// and per-app blocked-term sets, case-insensitively.
func containsBlockedTerm(title, text, pkg string) bool {
	haystack := strings.ToLower(title + " " + text)
	for _, term := range append(settings.GlobalBlockedTerms(), settings.AppBlockedTerms(pkg)...) {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
