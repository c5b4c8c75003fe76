// Package coreerr defines the contract-violation error sentinel shared by
// every calculator constructor in the core. Insufficient-data and
// unexpected-arithmetic conditions (spec §7's other two categories) never
// reach here — they resolve to a documented fallback value instead.
package coreerr

import "errors"

// ErrInvalidConfiguration is wrapped by every constructor-time validation
// failure: DCS weights not summing to 100, a CVaR/CDaR alpha outside its
// required range, an unknown CVaR method, and similar. It is never
// returned mid-scoring-run; invalid configuration fails before any
// scoring begins.
var ErrInvalidConfiguration = errors.New("coreerr: invalid configuration")
