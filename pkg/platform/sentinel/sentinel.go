package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Profile stores and the event sink
// return these (optionally wrapped) so services can translate them into domain
// errors:
//   - ErrNotFound: no record exists for the key
//   - ErrUnavailable: the backing service cannot be reached right now
//
// Input validation failures are not infrastructure facts; use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
