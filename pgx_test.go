package pgstatus

import (
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTxStatusCodeForByte(t *testing.T) {
	t.Parallel()

	cases := []struct {
		b    byte
		want int
	}{
		{'I', int(TxIdle)},
		{'T', int(TxInTrans)},
		{'E', int(TxInError)},
		{0, int(TxUnknown)},
		{'?', int(TxUnknown)},
	}

	for _, c := range cases {
		if got := txStatusCodeForByte(c.b); got != c.want {
			t.Fatalf("txStatusCodeForByte(%q)=%d, want %d", c.b, got, c.want)
		}
	}
}

func TestFromPgx_PanicsOnNilConn(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	FromPgx(nil)
}

func TestFromPgConn_PanicsOnNilArguments(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	FromPgConn(nil, &pgconn.Config{})
}

func TestPgxRawConn_IdentityFromConfig(t *testing.T) {
	t.Parallel()

	raw := &pgxRawConn{cfg: &pgconn.Config{
		Database: "app_db",
		User:     "svc_user",
		Host:     "db.internal.example.com",
		Port:     5432,
		RuntimeParams: map[string]string{
			"options": "-c statement_timeout=5s",
		},
	}}
	conn := New(raw)

	if got, want := conn.DB(), "app_db"; got != want {
		t.Fatalf("DB()=%q, want %q", got, want)
	}
	if got, want := conn.User(), "svc_user"; got != want {
		t.Fatalf("User()=%q, want %q", got, want)
	}
	if got, want := conn.Host(), "db.internal.example.com"; got != want {
		t.Fatalf("Host()=%q, want %q", got, want)
	}
	if got, want := conn.Port(), "5432"; got != want {
		t.Fatalf("Port()=%q, want %q", got, want)
	}
	opts, ok := conn.Options()
	if !ok || opts != "-c statement_timeout=5s" {
		t.Fatalf("Options()=(%q, %v)", opts, ok)
	}
	if tty, ok := conn.TTY(); ok {
		t.Fatalf("TTY()=(%q, true), want absent", tty)
	}
}

func TestPgxRawConn_PasswordEmptyMeansAbsent(t *testing.T) {
	t.Parallel()

	withPass := New(&pgxRawConn{cfg: &pgconn.Config{Password: "hunter2"}})
	pass, ok := withPass.Password()
	if !ok || pass != "hunter2" {
		t.Fatalf("Password()=(%q, %v), want (hunter2, true)", pass, ok)
	}
	if !withPass.UsedPassword() {
		t.Fatal("UsedPassword()=false with a configured password")
	}

	withoutPass := New(&pgxRawConn{cfg: &pgconn.Config{}})
	if pass, ok := withoutPass.Password(); ok {
		t.Fatalf("Password()=(%q, true) with no password configured, want absent", pass)
	}
	if withoutPass.UsedPassword() {
		t.Fatal("UsedPassword()=true with no password configured")
	}
	if withoutPass.NeedsPassword() {
		t.Fatal("NeedsPassword()=true on an established connection")
	}
}

func TestSocketOf_NonDescriptorTransports(t *testing.T) {
	t.Parallel()

	if got := socketOf(nil); got != -1 {
		t.Fatalf("socketOf(nil)=%d, want -1", got)
	}

	// net.Pipe connections carry no file descriptor.
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	if got := socketOf(client); got != -1 {
		t.Fatalf("socketOf(pipe)=%d, want -1", got)
	}
}

func TestSocketOf_TCPConnection(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if got := socketOf(conn); got < 0 {
		t.Fatalf("socketOf(tcp)=%d, want a real descriptor", got)
	}
}

func TestPresentHelpers(t *testing.T) {
	t.Parallel()

	if got := present(""); got == nil {
		t.Fatal("present(\"\")=nil, want present-but-empty")
	}
	if got := presentNonEmpty(""); got != nil {
		t.Fatalf("presentNonEmpty(\"\")=%v, want nil", got)
	}
	if got := string(presentNonEmpty("x")); got != "x" {
		t.Fatalf("presentNonEmpty(\"x\")=%q", got)
	}
}
