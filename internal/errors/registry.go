package errors

import (
	"maps"
	"slices"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Scope and provider wiring (E100-E119)
	// ============================================

	"E100": {
		Category:   CategoryScope,
		Message:    "Nil owner",
		Detail:     "A scoped operation was called without an owner. Every store, provider and consumer is attached to an Owner.",
		Suggestion: "Pass the owner of the node that performs the call, e.g. reactive.NewOwner(parent).",
		DocURL:     "https://statecore.dev/docs/errors/E100",
	},
	"E101": {
		Category:   CategoryScope,
		Message:    "Shared value read outside its provider",
		Detail:     "A consumer asked for a shared value but no ancestor owner provides the channel.",
		Suggestion: "Call Channel.Provide on an ancestor owner before consumers call Use or Read.",
		DocURL:     "https://statecore.dev/docs/errors/E101",
	},
	"E102": {
		Category:   CategoryScope,
		Message:    "Shared value written outside its provider",
		Detail:     "A consumer tried to write a shared value but no ancestor owner provides the channel.",
		Suggestion: "Call Channel.Provide on an ancestor owner before consumers call Write.",
		DocURL:     "https://statecore.dev/docs/errors/E102",
	},
	"E103": {
		Category:   CategoryScope,
		Message:    "Channel already provided on this owner",
		Detail:     "Exactly one provider owns a channel value per owner. Nest a child owner to shadow an outer provider.",
		DocURL:     "https://statecore.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryScope,
		Message:  "Owner disposed",
		Detail:   "The owner has been disposed. Stores and providers attached to it no longer accept work.",
		DocURL:   "https://statecore.dev/docs/errors/E104",
	},

	// ============================================
	// Hook slots and registries (E120-E139)
	// ============================================

	"E120": {
		Category:   CategoryHook,
		Message:    "Hook slot type mismatch",
		Detail:     "A hook found a value of a different type in its slot. Hooks must be called in the same order on every render.",
		Suggestion: "Do not call memo.Use, callback.Use or store.Use conditionally.",
		DocURL:     "https://statecore.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryHook,
		Message:  "Callback registry key reused with another function type",
		DocURL:   "https://statecore.dev/docs/errors/E121",
	},

	// ============================================
	// Configuration (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "statecore.json could not be parsed.",
		DocURL:   "https://statecore.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://statecore.dev/docs/errors/E141",
	},

	// ============================================
	// CLI (E160-E179)
	// ============================================

	"E160": {
		Category:   CategoryCLI,
		Message:    "Unknown demo",
		Suggestion: "Run `statecore demo --help` to list the available demos.",
		DocURL:     "https://statecore.dev/docs/errors/E160",
	},
	"E161": {
		Category: CategoryCLI,
		Message:  "Invalid replay script",
		Detail:   "Each entry must have exactly one of add, toggle or remove.",
		DocURL:   "https://statecore.dev/docs/errors/E161",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
