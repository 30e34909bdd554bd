package pgstatus

// The functions below are the only path driver-owned bytes take into caller
// hands. Each materializes an owned copy before returning, so the result
// stays valid after the driver reuses or frees its buffer.

// requiredText copies a buffer the RawConn contract guarantees non-nil.
// A nil buffer here means the driver broke that contract; returning "" would
// silently mask the breach, so this panics instead.
func requiredText(buf []byte) string {
	if buf == nil {
		panic("pgstatus: driver returned nil for a required attribute")
	}
	return string(buf)
}

// optionalText copies a buffer that may legitimately be nil. nil maps to
// ("", false); any non-nil buffer, including an empty one, maps to present.
func optionalText(buf []byte) (string, bool) {
	if buf == nil {
		return "", false
	}
	return string(buf), true
}

// textSlice copies a driver-owned list of buffers into an owned string
// slice, preserving order. A nil list means no entries and maps to an empty
// slice, not to nil and not to an error. Nil entries inside the list are a
// contract breach, same as requiredText.
func textSlice(bufs [][]byte) []string {
	out := make([]string, len(bufs))
	for i, buf := range bufs {
		out[i] = requiredText(buf)
	}
	return out
}
