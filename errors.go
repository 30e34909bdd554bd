package pgstatus

import (
	"errors"
	"fmt"
)

// ErrNoActiveSocket is returned by Conn.Socket when the connection reports
// no valid descriptor (for example, after it has been closed). It is
// recoverable by the caller and is never retried here.
var ErrNoActiveSocket = errors.New("pgstatus: no active socket")

// ProtocolMismatchError reports a raw status code outside the enumeration
// this package was built against, i.e. a version skew between this package
// and the driver's protocol. It is fatal to the calling operation and is
// never mapped to a default state.
type ProtocolMismatchError struct {
	// Space names the code space the value fell outside of.
	Space string
	// Code is the unrecognized raw value.
	Code int
}

func (e *ProtocolMismatchError) Error() string {
	return fmt.Sprintf("pgstatus: unrecognized %s code %d", e.Space, e.Code)
}
