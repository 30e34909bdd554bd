package pgstatus

import (
	"strconv"
	"strings"
)

// serverVersionNum converts a server_version parameter value into libpq's
// single-integer numbering: from version 10 on, major*10000 + minor; before
// that, major*10000 + minor*100 + revision. Development and beta suffixes
// ("16devel", "16beta1", "15.3 (Debian ...)") are handled the way libpq
// handles them: the numeric prefix of each dotted part counts, the rest is
// ignored, and a missing minor is treated as zero. Unparseable input yields
// zero.
func serverVersionNum(s string) int {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	parts := strings.SplitN(s, ".", 3)
	nums := make([]int, 0, 3)
	for _, part := range parts {
		end := 0
		for end < len(part) && part[end] >= '0' && part[end] <= '9' {
			end++
		}
		if end == 0 {
			break
		}
		n, err := strconv.Atoi(part[:end])
		if err != nil {
			break
		}
		nums = append(nums, n)
		if end != len(part) {
			// trailing suffix like "beta1" or "devel" ends the version
			break
		}
	}

	if len(nums) == 0 {
		return 0
	}

	major := nums[0]
	if major >= 10 {
		minor := 0
		if len(nums) > 1 {
			minor = nums[1]
		}
		return major*10000 + minor
	}

	minor, rev := 0, 0
	if len(nums) > 1 {
		minor = nums[1]
	}
	if len(nums) > 2 {
		rev = nums[2]
	}
	return major*10000 + minor*100 + rev
}
