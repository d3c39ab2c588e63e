package upgrade

import (
	"net/url"
	"strings"
	"sync"

	"github.com/gong8/sentinel-site/pkg/license"
)

// TriggerType identifies why an upgrade prompt opened.
type TriggerType string

const (
	// TriggerFeature means a gate denied access to a tier-locked feature.
	TriggerFeature TriggerType = "feature"
	// TriggerLimit means a gate denied creating a resource at its limit.
	TriggerLimit TriggerType = "limit"
)

// KeyEnter is the keyboard shortcut equivalent to the Upgrade action while
// the modal is open.
const KeyEnter = "Enter"

// ContactSalesEmail is the fixed recipient for the Contact Sales action.
const ContactSalesEmail = "hello@sentinel.dev"

// ModalState is the ephemeral payload carried by an open upgrade prompt.
// Limit triggers always carry ResourceType, CurrentUsage and Limit; feature
// triggers never do.
type ModalState struct {
	Trigger      TriggerType
	Feature      string
	DisplayName  string
	CurrentTier  license.Tier
	UpgradeURL   string
	ResourceType string
	CurrentUsage int64
	Limit        int64
}

// ProgressPercent renders usage as a percentage of the limit, capped at 100.
// Only meaningful for limit triggers; a zero limit reads as fully consumed.
func (s ModalState) ProgressPercent() int {
	if s.Trigger != TriggerLimit {
		return 0
	}
	if s.Limit <= 0 {
		return 100
	}
	return min(int((s.CurrentUsage*100)/s.Limit), 100)
}

// AtLimit reports whether usage has reached or passed the limit.
func (s ModalState) AtLimit() bool {
	return s.Trigger == TriggerLimit && s.CurrentUsage >= s.Limit
}

// Controller opens and closes the upgrade prompt. It is passed explicitly to
// everything that may trigger the prompt, including API error handlers,
// instead of living in a writable global slot.
type Controller interface {
	Show(state ModalState)
	Hide()
}

// Modal is the upgrade prompt surface: a two-state machine that is either
// closed (no state present) or open (holding one ModalState). All methods
// are safe for concurrent use.
type Modal struct {
	fallbackURL string
	salesEmail  string

	mu             sync.Mutex
	state          *ModalState
	comparisonOpen bool
}

// ModalOption configures a Modal.
type ModalOption func(*Modal)

// WithFallbackURL overrides the URL substituted when an upgrade link is
// absent or malformed. Empty values are ignored.
func WithFallbackURL(u string) ModalOption {
	return func(m *Modal) {
		if u != "" {
			m.fallbackURL = u
		}
	}
}

// WithSalesEmail overrides the Contact Sales recipient. Empty values are
// ignored.
func WithSalesEmail(email string) ModalOption {
	return func(m *Modal) {
		if email != "" {
			m.salesEmail = email
		}
	}
}

// NewModal creates a closed upgrade prompt.
func NewModal(opts ...ModalOption) *Modal {
	m := &Modal{
		fallbackURL: license.DefaultUpgradeURL,
		salesEmail:  ContactSalesEmail,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Show transitions closed -> open with the given payload. Resource usage
// fields are stripped from feature triggers so the state invariant holds
// regardless of what the caller passed.
func (m *Modal) Show(state ModalState) {
	if state.Trigger != TriggerLimit {
		state.Trigger = TriggerFeature
		state.ResourceType = ""
		state.CurrentUsage = 0
		state.Limit = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &state
	m.comparisonOpen = false
}

// Hide transitions open -> closed, discarding the state.
func (m *Modal) Hide() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	m.comparisonOpen = false
}

// IsOpen reports whether the prompt is currently open.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state != nil
}

// State returns the current payload. The second return is false while the
// prompt is closed.
func (m *Modal) State() (ModalState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return ModalState{}, false
	}
	return *m.state, true
}

// Upgrade resolves the navigation target for the upgrade call to action and
// closes the prompt. Malformed upgrade URLs are silently replaced with the
// fallback. Returns false while the prompt is closed.
func (m *Modal) Upgrade() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return "", false
	}
	target := resolveURL(m.state.UpgradeURL, m.fallbackURL)
	m.state = nil
	m.comparisonOpen = false
	return target, true
}

// ContactSales returns a pre-filled mailto URL referencing the blocked
// feature and the user's current tier. The prompt stays open.
func (m *Modal) ContactSales() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return "", false
	}
	return salesMailto(m.salesEmail, m.state.DisplayName, m.state.CurrentTier), true
}

// Dismiss closes the prompt without side effects.
func (m *Modal) Dismiss() {
	m.Hide()
}

// HandleKey processes a keyboard shortcut. Enter is equivalent to Upgrade
// and is only active while the prompt is open; every other key is ignored.
func (m *Modal) HandleKey(key string) (string, bool) {
	if key != KeyEnter {
		return "", false
	}
	return m.Upgrade()
}

// ToggleComparison flips the tier-comparison table visibility and returns
// the new value. Purely a display toggle: it never affects the modal state
// itself, and always reads false while the prompt is closed.
func (m *Modal) ToggleComparison() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return false
	}
	m.comparisonOpen = !m.comparisonOpen
	return m.comparisonOpen
}

// ComparisonOpen reports whether the tier-comparison table is expanded.
func (m *Modal) ComparisonOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.comparisonOpen
}

// resolveURL returns raw when it parses as an absolute http(s) URL,
// otherwise fallback.
func resolveURL(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fallback
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fallback
	}
	return raw
}

// salesMailto builds the Contact Sales mailto URL. Spaces are encoded as
// %20 rather than + so mail clients render the subject and body verbatim.
func salesMailto(email, displayName string, tier license.Tier) string {
	subject := "Enterprise inquiry - " + displayName
	body := "Hi,\n\n" +
		"I'm interested in learning more about Sentinel Enterprise features, specifically " +
		displayName + ".\n\n" +
		"Current plan: " + tier.String() + "\n\n" +
		"Please contact me with more information.\n\nThank you"

	return "mailto:" + email +
		"?subject=" + mailtoEscape(subject) +
		"&body=" + mailtoEscape(body)
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
