package pgstatus

import "testing"

func TestServerVersionNum(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"15.3", 150003},
		{"10.0", 100000},
		{"10", 100000},
		{"17.2 (Debian 17.2-1.pgdg120+1)", 170002},
		{"16devel", 160000},
		{"16beta1", 160000},
		{"9.6.24", 90624},
		{"9.5", 90500},
		{"", 0},
		{"unknown", 0},
	}

	for _, c := range cases {
		if got := serverVersionNum(c.in); got != c.want {
			t.Fatalf("serverVersionNum(%q)=%d, want %d", c.in, got, c.want)
		}
	}
}
