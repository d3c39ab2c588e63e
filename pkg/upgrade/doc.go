// Package upgrade implements the upgrade-prompt flow shown when a license
// gate denies an action.
//
// Modal is a two-state surface (closed/open) holding the denial payload:
// what was blocked, why (missing feature vs. limit reached), the user's
// current tier, and the resolved upgrade destination. Its actions mirror the
// prompt's buttons - Upgrade validates the link and closes, ContactSales
// builds a pre-filled mailto and stays open, Dismiss closes silently. The
// Enter key doubles as Upgrade but only while the prompt is open.
//
// GatedAction wraps any action behind a resource-limit check and opens the
// prompt on denial. The Controller interface is passed explicitly to every
// component that can trigger the prompt; there is no global show-modal slot.
package upgrade
