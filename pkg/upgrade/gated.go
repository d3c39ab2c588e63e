package upgrade

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gong8/sentinel-site/pkg/license"
)

// StatusSource provides the current entitlement snapshot. Satisfied by
// *license.Provider.
type StatusSource interface {
	Status(ctx context.Context) license.Status
}

// limitDisplayNames maps gateable resources to the feature name shown in the
// upgrade prompt title.
var limitDisplayNames = map[license.Resource]string{
	license.ResourceUsers:   "Users",
	license.ResourceServers: "MCP Servers",
}

// resourceLabels maps gateable resources to the singular noun used in prompt
// copy and tooltips.
var resourceLabels = map[license.Resource]string{
	license.ResourceUsers:   "team member",
	license.ResourceServers: "MCP server",
}

var titleCaser = cases.Title(language.English)

// GatedAction wraps an action behind a resource-limit check. Invoking it
// re-evaluates the gate against the latest cached status; on denial the
// wrapped action is suppressed and the upgrade prompt opens with the limit
// payload instead.
type GatedAction struct {
	resource license.Resource
	source   StatusSource
	modal    Controller
	action   func(ctx context.Context) error
}

// NewGatedAction wires an action to a resource gate. Panics on nil
// dependencies: a gate without a status source or prompt controller is a
// programming error.
func NewGatedAction(res license.Resource, source StatusSource, modal Controller, action func(ctx context.Context) error) *GatedAction {
	if source == nil || modal == nil || action == nil {
		panic("upgrade: GatedAction requires a status source, a controller, and an action")
	}
	return &GatedAction{
		resource: res,
		source:   source,
		modal:    modal,
		action:   action,
	}
}

// Invoke runs the wrapped action if the gate allows it, exactly as if the
// gate were absent. On denial it opens the upgrade prompt and reports
// ran=false with a nil error.
func (g *GatedAction) Invoke(ctx context.Context) (ran bool, err error) {
	status := g.source.Status(ctx)
	if status.CanAdd(g.resource) {
		return true, g.action(ctx)
	}

	usage, _ := status.Usage(g.resource)
	g.modal.Show(ModalState{
		Trigger:      TriggerLimit,
		Feature:      string(g.resource),
		DisplayName:  displayName(g.resource),
		CurrentTier:  status.Tier,
		UpgradeURL:   status.UpgradeURL,
		ResourceType: resourceLabel(g.resource),
		CurrentUsage: usage.Current,
		Limit:        usage.Max,
	})
	return false, nil
}

// Allowed reports whether the action would run right now. Used to render the
// disabled/limited visual state.
func (g *GatedAction) Allowed(ctx context.Context) bool {
	return g.source.Status(ctx).CanAdd(g.resource)
}

// Hint returns the hover explanation for a denied action, e.g.
// "Team member limit reached (3/3). Click to upgrade." It is empty while the
// action is allowed.
func (g *GatedAction) Hint(ctx context.Context) string {
	status := g.source.Status(ctx)
	if status.CanAdd(g.resource) {
		return ""
	}
	usage, _ := status.Usage(g.resource)
	label := resourceLabel(g.resource)
	return fmt.Sprintf("%s limit reached (%d/%d). Click to upgrade.",
		capitalize(label), usage.Current, usage.Max)
}

func displayName(res license.Resource) string {
	if name, ok := limitDisplayNames[res]; ok {
		return name
	}
	return titleCaser.String(string(res))
}

func resourceLabel(res license.Resource) string {
	if label, ok := resourceLabels[res]; ok {
		return label
	}
	return string(res)
}

// capitalize upper-cases the first letter only, leaving the rest of the
// label untouched ("team member" -> "Team member").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return titleCaser.String(s[:1]) + s[1:]
}
