// Package errors provides coded diagnostics for statecore.
//
// Every wiring mistake the library can detect (a shared value read outside
// its provider, a hook slot reused with another type, an invalid config file)
// has a registered code. The CLI turns library errors into a StateError and
// prints it with Format:
//
//	err := errors.New("E101").WithDetail("theme").Wrap(cause)
//	fmt.Fprint(os.Stderr, err.Format())
//
// Codes are grouped by category:
//
//	E100-E119  scope and provider wiring
//	E120-E139  hook slots and registries
//	E140-E159  configuration
//	E160-E179  CLI
package errors
