package pgstatus

// TestRawConn is a RawConn fake for unit tests. Set the Func field for each
// attribute the test cares about; unset fields fall back to the documented
// defaults, which together describe a plain healthy connection:
//
//   - required text attributes (DB, User, Host, Port, ParameterStatus)
//     report present-but-empty
//   - optional text attributes (Pass, TTY, Options, ErrorMessage,
//     SSLAttribute) report absent
//   - StatusCode reports ok, TransactionStatusCode reports idle
//   - ProtocolVersion reports 3; ServerVersion and BackendPID report 0
//   - Socket reports -1 (no active socket)
//   - NeedsPassword, UsedPassword, and SSLInUse report 0
//   - SSLAttributeNames and SSLStruct report nil
type TestRawConn struct {
	DBFunc                    func() []byte
	UserFunc                  func() []byte
	PassFunc                  func() []byte
	HostFunc                  func() []byte
	PortFunc                  func() []byte
	TTYFunc                   func() []byte
	OptionsFunc               func() []byte
	StatusCodeFunc            func() int
	TransactionStatusCodeFunc func() int
	ParameterStatusFunc       func(name string) []byte
	ProtocolVersionFunc       func() int
	ServerVersionFunc         func() int
	ErrorMessageFunc          func() []byte
	SocketFunc                func() int
	BackendPIDFunc            func() int
	NeedsPasswordFunc         func() int
	UsedPasswordFunc          func() int
	SSLInUseFunc              func() int
	SSLAttributeNamesFunc     func() [][]byte
	SSLAttributeFunc          func(name string) []byte
	SSLStructFunc             func(name string) any
}

var _ RawConn = (*TestRawConn)(nil)

func bytesOrEmpty(fn func() []byte) []byte {
	if fn != nil {
		return fn()
	}
	return []byte{}
}

func bytesOrNil(fn func() []byte) []byte {
	if fn != nil {
		return fn()
	}
	return nil
}

func (t *TestRawConn) DB() []byte      { return bytesOrEmpty(t.DBFunc) }
func (t *TestRawConn) User() []byte    { return bytesOrEmpty(t.UserFunc) }
func (t *TestRawConn) Pass() []byte    { return bytesOrNil(t.PassFunc) }
func (t *TestRawConn) Host() []byte    { return bytesOrEmpty(t.HostFunc) }
func (t *TestRawConn) Port() []byte    { return bytesOrEmpty(t.PortFunc) }
func (t *TestRawConn) TTY() []byte     { return bytesOrNil(t.TTYFunc) }
func (t *TestRawConn) Options() []byte { return bytesOrNil(t.OptionsFunc) }

func (t *TestRawConn) StatusCode() int {
	if t.StatusCodeFunc != nil {
		return t.StatusCodeFunc()
	}
	return int(StatusOK)
}

func (t *TestRawConn) TransactionStatusCode() int {
	if t.TransactionStatusCodeFunc != nil {
		return t.TransactionStatusCodeFunc()
	}
	return int(TxIdle)
}

func (t *TestRawConn) ParameterStatus(name string) []byte {
	if t.ParameterStatusFunc != nil {
		return t.ParameterStatusFunc(name)
	}
	return []byte{}
}

func (t *TestRawConn) ProtocolVersion() int {
	if t.ProtocolVersionFunc != nil {
		return t.ProtocolVersionFunc()
	}
	return 3
}

func (t *TestRawConn) ServerVersion() int {
	if t.ServerVersionFunc != nil {
		return t.ServerVersionFunc()
	}
	return 0
}

func (t *TestRawConn) ErrorMessage() []byte { return bytesOrNil(t.ErrorMessageFunc) }

func (t *TestRawConn) Socket() int {
	if t.SocketFunc != nil {
		return t.SocketFunc()
	}
	return -1
}

func (t *TestRawConn) BackendPID() int {
	if t.BackendPIDFunc != nil {
		return t.BackendPIDFunc()
	}
	return 0
}

func intCodeOrZero(fn func() int) int {
	if fn != nil {
		return fn()
	}
	return 0
}

func (t *TestRawConn) NeedsPassword() int { return intCodeOrZero(t.NeedsPasswordFunc) }
func (t *TestRawConn) UsedPassword() int  { return intCodeOrZero(t.UsedPasswordFunc) }
func (t *TestRawConn) SSLInUse() int      { return intCodeOrZero(t.SSLInUseFunc) }

func (t *TestRawConn) SSLAttributeNames() [][]byte {
	if t.SSLAttributeNamesFunc != nil {
		return t.SSLAttributeNamesFunc()
	}
	return nil
}

func (t *TestRawConn) SSLAttribute(name string) []byte {
	if t.SSLAttributeFunc != nil {
		return t.SSLAttributeFunc(name)
	}
	return nil
}

func (t *TestRawConn) SSLStruct(name string) any {
	if t.SSLStructFunc != nil {
		return t.SSLStructFunc(name)
	}
	return nil
}
