package pgstatus

// Conn is the public query surface: one accessor per observable connection
// attribute, each a single synchronous read against the underlying RawConn.
// Conn holds no state of its own and caches nothing between calls.
//
// Conn is safe for concurrent use only to the extent the underlying RawConn
// is; see I5 in the package documentation.
type Conn struct {
	raw RawConn
}

// New wraps an established connection. It panics on a nil RawConn: a nil
// handle is a programming error, not a runtime condition.
func New(raw RawConn) *Conn {
	if raw == nil {
		panic("pgstatus: New called with nil RawConn")
	}
	return &Conn{raw: raw}
}

// DB returns the database name of the connection.
func (c *Conn) DB() string {
	return requiredText(c.raw.DB())
}

// User returns the user name of the connection.
func (c *Conn) User() string {
	return requiredText(c.raw.User())
}

// Password returns the configured password. "No password configured"
// (ok=false) and "password is the empty string" (ok=true, empty value) are
// distinct results.
func (c *Conn) Password() (string, bool) {
	return optionalText(c.raw.Pass())
}

// Host returns the server host of the active connection. It may be a host
// name, an IP address, or the directory path of a Unix socket; the path case
// is an absolute path, so callers distinguish it by a leading '/'.
func (c *Conn) Host() string {
	return requiredText(c.raw.Host())
}

// Port returns the port of the active connection as configured text.
func (c *Conn) Port() string {
	return requiredText(c.raw.Port())
}

// TTY returns the debug TTY of the connection.
//
// Deprecated: the server no longer pays attention to the TTY setting. The
// accessor remains for compatibility; adapters report it as absent.
func (c *Conn) TTY() (string, bool) {
	return optionalText(c.raw.TTY())
}

// Options returns the command-line options passed in the connection request.
func (c *Conn) Options() (string, bool) {
	return optionalText(c.raw.Options())
}

// Status returns the lifecycle status of the connection, read fresh from the
// driver. It fails with a ProtocolMismatchError if the driver reports a code
// this package does not know.
func (c *Conn) Status() (Status, error) {
	return translateStatus(c.raw.StatusCode())
}

// TransactionStatus returns the current in-transaction status of the
// session, read fresh from the driver, with the same mismatch rule as
// Status.
func (c *Conn) TransactionStatus() (TxStatus, error) {
	return translateTxStatus(c.raw.TransactionStatusCode())
}

// ParameterStatus looks up a current server run-time parameter by name. An
// untracked parameter is reported by the driver as empty text, so the result
// is always present.
func (c *Conn) ParameterStatus(name string) string {
	return requiredText(c.raw.ParameterStatus(name))
}

// ProtocolVersion returns the frontend/backend protocol being used.
func (c *Conn) ProtocolVersion() int {
	return c.raw.ProtocolVersion()
}

// ServerVersion returns the server version as a single integer: for servers
// from version 10 on, major*10000 + minor (15.3 is 150003); before that,
// major*10000 + minor*100 + revision.
func (c *Conn) ServerVersion() int {
	return c.raw.ServerVersion()
}

// ErrorMessage returns the error message most recently recorded on the
// connection. Absent means the driver has recorded none; this package never
// sets or clears that slot.
func (c *Conn) ErrorMessage() (string, bool) {
	return optionalText(c.raw.ErrorMessage())
}

// Socket returns the file descriptor of the connection socket. Any negative
// raw value translates to ErrNoActiveSocket, so a -1 sentinel can never be
// mistaken for a real descriptor. Descriptor 0 is valid.
func (c *Conn) Socket() (int, error) {
	fd := c.raw.Socket()
	if fd < 0 {
		return 0, ErrNoActiveSocket
	}
	return fd, nil
}

// BackendPID returns the process ID of the backend serving this connection.
// The wire reports it signed; it is unsigned here.
func (c *Conn) BackendPID() uint32 {
	return uint32(c.raw.BackendPID())
}

// NeedsPassword reports whether authentication required a password that was
// not available.
func (c *Conn) NeedsPassword() bool {
	return c.raw.NeedsPassword() == 1
}

// UsedPassword reports whether authentication used a password.
func (c *Conn) UsedPassword() bool {
	return c.raw.UsedPassword() == 1
}

// SSLInUse reports whether the connection is encrypted.
func (c *Conn) SSLInUse() bool {
	return c.raw.SSLInUse() == 1
}
