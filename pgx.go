package pgstatus

import (
	"crypto/tls"
	"net"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FromPgx wraps an established pgx v5 connection in the status facade.
// It panics on a nil connection, same as New.
//
// The facade only reads; it never executes commands on the connection and
// never closes it. The usual pgx exclusion rules apply: do not call facade
// accessors concurrently with a query on the same connection.
func FromPgx(conn *pgx.Conn) *Conn {
	if conn == nil {
		panic("pgstatus: FromPgx called with nil *pgx.Conn")
	}
	cfg := conn.Config()
	return FromPgConn(conn.PgConn(), &cfg.Config)
}

// FromPgConn wraps a low-level pgconn connection plus the config it was
// established with. Both arguments must be non-nil.
//
// pgconn models less than the wire protocol allows, so a few attributes are
// approximations, noted on the pgxRawConn methods: NeedsPassword is always
// false on an established connection, UsedPassword reports whether the
// config carried a password, ErrorMessage is always absent, and the
// lifecycle status is only ever ok or bad.
func FromPgConn(pc *pgconn.PgConn, cfg *pgconn.Config) *Conn {
	if pc == nil || cfg == nil {
		panic("pgstatus: FromPgConn called with nil connection or config")
	}
	return New(&pgxRawConn{pc: pc, cfg: cfg})
}

// pgxRawConn adapts pgconn's accessor surface to the RawConn boundary.
// Identity fields come from the config; live state comes from the
// connection.
type pgxRawConn struct {
	pc  *pgconn.PgConn
	cfg *pgconn.Config
}

var _ RawConn = (*pgxRawConn)(nil)

// present returns s as a present (non-nil) buffer even when empty.
func present(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return []byte(s)
}

// presentNonEmpty maps the empty string to absent. Used where pgconn's
// config cannot distinguish "unset" from "empty".
func presentNonEmpty(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}

func (r *pgxRawConn) DB() []byte   { return present(r.cfg.Database) }
func (r *pgxRawConn) User() []byte { return present(r.cfg.User) }

// Pass reports an empty configured password as absent: pgconn.Config keeps
// the password as a plain string with no unset marker.
func (r *pgxRawConn) Pass() []byte { return presentNonEmpty(r.cfg.Password) }

func (r *pgxRawConn) Host() []byte { return present(r.cfg.Host) }

func (r *pgxRawConn) Port() []byte {
	return present(strconv.FormatUint(uint64(r.cfg.Port), 10))
}

// TTY is always absent; the setting is long dead and pgconn never carried it.
func (r *pgxRawConn) TTY() []byte { return nil }

func (r *pgxRawConn) Options() []byte {
	return presentNonEmpty(r.cfg.RuntimeParams["options"])
}

func (r *pgxRawConn) StatusCode() int {
	if r.pc.IsClosed() {
		return int(StatusBad)
	}
	return int(StatusOK)
}

func (r *pgxRawConn) TransactionStatusCode() int {
	if r.pc.IsClosed() {
		return int(TxUnknown)
	}
	if r.pc.IsBusy() {
		return int(TxActive)
	}
	return txStatusCodeForByte(r.pc.TxStatus())
}

// txStatusCodeForByte maps the ReadyForQuery status byte onto the raw code
// space: 'I' idle, 'T' in a transaction block, 'E' in a failed transaction
// block. Anything else (including the zero byte before the first
// ReadyForQuery) is unknown.
func txStatusCodeForByte(b byte) int {
	switch b {
	case 'I':
		return int(TxIdle)
	case 'T':
		return int(TxInTrans)
	case 'E':
		return int(TxInError)
	default:
		return int(TxUnknown)
	}
}

func (r *pgxRawConn) ParameterStatus(name string) []byte {
	return present(r.pc.ParameterStatus(name))
}

func (r *pgxRawConn) ProtocolVersion() int {
	// pgconn speaks protocol 3 exclusively.
	return 3
}

func (r *pgxRawConn) ServerVersion() int {
	return serverVersionNum(r.pc.ParameterStatus("server_version"))
}

// ErrorMessage is always absent: pgconn surfaces errors on each operation's
// return value and keeps no per-connection last-error slot to read.
func (r *pgxRawConn) ErrorMessage() []byte { return nil }

func (r *pgxRawConn) Socket() int {
	return socketOf(r.pc.Conn())
}

func (r *pgxRawConn) BackendPID() int {
	return int(r.pc.PID())
}

// NeedsPassword is always 0: a pgx connect that required an unavailable
// password fails before a connection exists to introspect.
func (r *pgxRawConn) NeedsPassword() int { return 0 }

func (r *pgxRawConn) UsedPassword() int {
	if r.cfg.Password != "" {
		return 1
	}
	return 0
}

func (r *pgxRawConn) SSLInUse() int {
	if _, ok := r.pc.Conn().(*tls.Conn); ok {
		return 1
	}
	return 0
}

// sslAttributeOrder fixes the catalog order reported for a TLS connection.
// key_bits is omitted: crypto/tls does not expose the negotiated key size.
var sslAttributeOrder = []SSLAttribute{SSLLibrary, SSLProtocol, SSLCipher, SSLCompression, SSLALPN}

func (r *pgxRawConn) SSLAttributeNames() [][]byte {
	if _, ok := r.pc.Conn().(*tls.Conn); !ok {
		return nil
	}
	names := make([][]byte, len(sslAttributeOrder))
	for i, attr := range sslAttributeOrder {
		names[i] = []byte(attr)
	}
	return names
}

func (r *pgxRawConn) SSLAttribute(name string) []byte {
	tc, ok := r.pc.Conn().(*tls.Conn)
	if !ok {
		return nil
	}
	state := tc.ConnectionState()

	switch SSLAttribute(name) {
	case SSLLibrary:
		return present("crypto/tls")
	case SSLProtocol:
		return present(tls.VersionName(state.Version))
	case SSLCipher:
		return present(tls.CipherSuiteName(state.CipherSuite))
	case SSLCompression:
		// TLS compression is never negotiated by crypto/tls.
		return present("off")
	case SSLALPN:
		// Present-but-empty when no protocol was negotiated, matching the
		// server-side reporting convention.
		return present(state.NegotiatedProtocol)
	default:
		return nil
	}
}

func (r *pgxRawConn) SSLStruct(name string) any {
	if name != "crypto/tls" {
		return nil
	}
	if tc, ok := r.pc.Conn().(*tls.Conn); ok {
		return tc
	}
	return nil
}

// socketOf digs the file descriptor out of the connection's net.Conn,
// unwrapping TLS first. A connection whose transport does not expose a
// descriptor (or whose descriptor is already closed) reports -1, which the
// facade turns into ErrNoActiveSocket.
func socketOf(nc net.Conn) int {
	if nc == nil {
		return -1
	}
	if tc, ok := nc.(*tls.Conn); ok {
		nc = tc.NetConn()
	}
	sc, ok := nc.(syscall.Conn)
	if !ok {
		return -1
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return -1
	}
	fd := -1
	if err := rc.Control(func(f uintptr) { fd = int(f) }); err != nil {
		return -1
	}
	return fd
}
