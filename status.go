package pgstatus

// Status is the coarse lifecycle state of a connection. Exactly one state
// holds at a time; it is read fresh from the driver on every call, never
// cached here.
//
// The numeric values mirror libpq's ConnStatusType so raw driver codes
// translate positionally. The intermediate states (Started through
// CheckStandby) are only observable while an asynchronous connection attempt
// is in flight.
type Status int

const (
	StatusOK Status = iota
	StatusBad
	StatusStarted          // waiting for connection to be made
	StatusMade             // connection established, waiting to send
	StatusAwaitingResponse // waiting for a server response
	StatusAuthOK           // authentication accepted, backend starting
	StatusSetEnv           // negotiating environment-driven parameters
	StatusSSLStartup       // negotiating SSL encryption
	StatusNeeded           // internal: connect() needed
	StatusCheckWritable    // checking if the session can be written to
	StatusConsume          // consuming remaining response messages
	StatusGSSStartup       // negotiating GSS encryption
	StatusCheckTarget      // internal: checking target server properties
	StatusCheckStandby     // checking if the server is a standby
)

var statusNames = map[Status]string{
	StatusOK:               "ok",
	StatusBad:              "bad",
	StatusStarted:          "started",
	StatusMade:             "made",
	StatusAwaitingResponse: "awaiting response",
	StatusAuthOK:           "auth ok",
	StatusSetEnv:           "setenv",
	StatusSSLStartup:       "ssl startup",
	StatusNeeded:           "needed",
	StatusCheckWritable:    "check writable",
	StatusConsume:          "consume",
	StatusGSSStartup:       "gss startup",
	StatusCheckTarget:      "check target",
	StatusCheckStandby:     "check standby",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "invalid status"
}

// TxStatus is the session's position relative to a transaction block,
// independent of the connection lifecycle Status. Values mirror libpq's
// PGTransactionStatusType.
type TxStatus int

const (
	// TxIdle: not inside any transaction block.
	TxIdle TxStatus = iota
	// TxActive: a command is in flight; the status cannot be read until it
	// completes.
	TxActive
	// TxInTrans: inside a valid transaction block.
	TxInTrans
	// TxInError: inside a transaction block that has already failed.
	// Distinct from TxInTrans; the two are never inferred from each other.
	TxInError
	// TxUnknown: the connection is in a state (typically bad) where the
	// transaction status cannot be determined.
	TxUnknown
)

var txStatusNames = map[TxStatus]string{
	TxIdle:    "idle",
	TxActive:  "active",
	TxInTrans: "in transaction",
	TxInError: "in failed transaction",
	TxUnknown: "unknown",
}

func (s TxStatus) String() string {
	if name, ok := txStatusNames[s]; ok {
		return name
	}
	return "invalid transaction status"
}

// translateStatus maps a raw lifecycle code onto Status. A code outside the
// documented range means this package and the driver disagree on the
// protocol version; that surfaces as a ProtocolMismatchError rather than
// being rounded to a plausible state.
func translateStatus(code int) (Status, error) {
	s := Status(code)
	if _, ok := statusNames[s]; !ok {
		return 0, &ProtocolMismatchError{Space: "connection status", Code: code}
	}
	return s, nil
}

// translateTxStatus maps a raw transaction code onto TxStatus with the same
// no-defaulting rule as translateStatus. Misreporting a failed transaction
// as anything else would break transaction safety for the caller.
func translateTxStatus(code int) (TxStatus, error) {
	s := TxStatus(code)
	if _, ok := txStatusNames[s]; !ok {
		return 0, &ProtocolMismatchError{Space: "transaction status", Code: code}
	}
	return s, nil
}
