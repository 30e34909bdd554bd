package pgstatus

// SSLAttribute names a transport-security property of the connection. The
// set of known names below tracks libpq's documented catalog, but the type
// deliberately admits any name: which attributes exist depends on the
// security library the driver was built against, so unknown names are
// carried through as extensions rather than dropped.
type SSLAttribute string

const (
	SSLLibrary     SSLAttribute = "library"
	SSLKeyBits     SSLAttribute = "key_bits"
	SSLCipher      SSLAttribute = "cipher"
	SSLCompression SSLAttribute = "compression"
	SSLProtocol    SSLAttribute = "protocol"
	SSLALPN        SSLAttribute = "alpn"
)

// Known reports whether the attribute is part of the documented catalog, as
// opposed to an extension name passed through from the driver.
func (a SSLAttribute) Known() bool {
	switch a {
	case SSLLibrary, SSLKeyBits, SSLCipher, SSLCompression, SSLProtocol, SSLALPN:
		return true
	}
	return false
}

func (a SSLAttribute) String() string { return string(a) }

// SSLAttributeNames returns the transport-security attributes available on
// this connection, in driver order. The catalog is queried live on every
// call because it can change with the driver's security back end. A
// connection with no attributes yields an empty slice, not an error.
func (c *Conn) SSLAttributeNames() []SSLAttribute {
	names := textSlice(c.raw.SSLAttributeNames())
	attrs := make([]SSLAttribute, len(names))
	for i, name := range names {
		attrs[i] = SSLAttribute(name)
	}
	return attrs
}

// SSLAttributeValue returns the value of a transport-security attribute.
// Absent means the attribute does not apply to the connection's current
// transport (for example, any attribute on an unencrypted connection); that
// is a normal outcome, not an error.
func (c *Conn) SSLAttributeValue(attr SSLAttribute) (string, bool) {
	return optionalText(c.raw.SSLAttribute(string(attr)))
}

// SSLStruct returns an implementation-specific object describing the
// connection's security state, or nil. The result's type and meaning are
// defined entirely by the driver; it sits outside the safe contract of this
// package and callers must type-assert against the driver they know they
// are using.
func (c *Conn) SSLStruct(name string) any {
	return c.raw.SSLStruct(name)
}
