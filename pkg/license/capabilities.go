package license

// Capabilities is the fixed set of named access checks derived from a
// Status. Each field delegates to a single AtLeast or HasFeature call;
// compute it once per status fetch and hand it to UI code as read-only
// booleans.
type Capabilities struct {
	// Standard-and-above surfaces.
	CanAccessPublishers bool `json:"canAccessPublishers"`
	CanAccessRequests   bool `json:"canAccessRequests"`
	CanAccessSessions   bool `json:"canAccessSessions"`
	CanAccessAgents     bool `json:"canAccessAgents"`
	CanAccessWebhooks   bool `json:"canAccessWebhooks"`
	CanTestPolicies     bool `json:"canTestPolicies"`
	CanViewConflicts    bool `json:"canViewConflicts"`
	CanViewAssertions   bool `json:"canViewAssertions"`
	CanViewToolFlags    bool `json:"canViewToolFlags"`

	// Enterprise surfaces.
	CanAccessSentinelAgent   bool `json:"canAccessSentinelAgent"`
	CanAccessAdminMCP        bool `json:"canAccessAdminMcp"`
	CanAccessGlobalVariables bool `json:"canAccessGlobalVariables"`

	// Enterprise plus an account-level settings toggle.
	CanAccessMCPConfirmations bool `json:"canAccessMcpConfirmations"`
}

// NewCapabilities derives the capability set from a status snapshot.
func NewCapabilities(s Status) Capabilities {
	teamPlus := s.AtLeast(TierStandard)
	enterprise := s.AtLeast(TierEnterprise)

	return Capabilities{
		CanAccessPublishers: teamPlus,
		CanAccessRequests:   teamPlus,
		CanAccessSessions:   teamPlus,
		CanAccessAgents:     teamPlus,
		CanAccessWebhooks:   teamPlus,
		CanTestPolicies:     teamPlus,
		CanViewConflicts:    teamPlus,
		CanViewAssertions:   teamPlus,
		CanViewToolFlags:    teamPlus,

		CanAccessSentinelAgent:   enterprise,
		CanAccessAdminMCP:        enterprise,
		CanAccessGlobalVariables: enterprise,

		CanAccessMCPConfirmations: enterprise && s.Settings.AdminMCPEnabled,
	}
}
