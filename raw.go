package pgstatus

// RawConn is the boundary this package consumes: the low-level connection
// object owned by a driver or transport layer. Every method is a local read
// of already-received state; none may block on network I/O.
//
// Byte-slice results are borrowed references into driver-owned storage. The
// driver may reuse or invalidate that storage on the next call against the
// same RawConn, so callers must copy before making another call. A nil slice
// means the attribute is absent; an empty non-nil slice means present and
// empty. The two are not interchangeable.
//
// Status and boolean results are raw integer codes as reported by the wire
// protocol. They carry no meaning until translated; in particular a boolean
// code is true only when it equals 1, not merely when it is nonzero.
//
// Prefer depending on *Conn rather than RawConn in application code. RawConn
// exists so drivers can be adapted (see FromPgx) and so tests can substitute
// a fake (see TestRawConn).
type RawConn interface {
	// DB returns the database name. Never nil on an established connection.
	DB() []byte

	// User returns the user name. Never nil on an established connection.
	User() []byte

	// Pass returns the configured password, or nil if none was supplied.
	Pass() []byte

	// Host returns the server host: a hostname, an IP literal, or the
	// absolute directory path of a Unix socket. Never nil.
	Host() []byte

	// Port returns the port as configured text. Never nil.
	Port() []byte

	// TTY returns the legacy debug TTY, or nil. The server ignores this
	// setting; it survives only for compatibility.
	TTY() []byte

	// Options returns the command-line options sent in the startup request,
	// or nil if none were set.
	Options() []byte

	// StatusCode returns the raw connection lifecycle code.
	StatusCode() int

	// TransactionStatusCode returns the raw in-transaction status code.
	TransactionStatusCode() int

	// ParameterStatus returns the server-reported value of a run-time
	// parameter. An untracked parameter is reported as empty, not nil.
	ParameterStatus(name string) []byte

	// ProtocolVersion returns the negotiated frontend/backend protocol
	// version.
	ProtocolVersion() int

	// ServerVersion returns the server version in libpq numbering
	// (e.g. 150003 for 15.3), or 0 when unknown.
	ServerVersion() int

	// ErrorMessage returns the most recent error recorded on the
	// connection, or nil if none.
	ErrorMessage() []byte

	// Socket returns the connection's file descriptor, or a negative value
	// when there is no active socket.
	Socket() int

	// BackendPID returns the process ID of the backend serving this
	// connection.
	BackendPID() int

	// NeedsPassword reports (as a raw code) whether authentication demanded
	// a password that was not available.
	NeedsPassword() int

	// UsedPassword reports (as a raw code) whether authentication used a
	// password.
	UsedPassword() int

	// SSLInUse reports (as a raw code) whether the connection is encrypted.
	SSLInUse() int

	// SSLAttributeNames returns the transport-security attribute names
	// available on this connection, or nil when there are none.
	SSLAttributeNames() [][]byte

	// SSLAttribute returns the value of a transport-security attribute, or
	// nil when the attribute does not apply to the current transport.
	SSLAttribute(name string) []byte

	// SSLStruct returns an implementation-specific security object for the
	// given implementation name, or nil. Its type and meaning are defined
	// by the driver, not by this package.
	SSLStruct(name string) any
}
