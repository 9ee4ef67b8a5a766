package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a Redfish "vM_m_p" version triple. The zero value represents
// "absent" and sorts as older than any present version.
type Version struct {
	Major, Minor, Patch uint8
	present             bool
}

// ParseVersion parses a "vM_m_p" segment (the "v" prefix is optional). It
// returns ok=false, not an error, when the segment does not match the
// pattern -- the caller (naming.ParseSchemaName) treats that as "no version
// present", not a fatal parse error.
func ParseVersion(segment string) (Version, bool) {
	s := strings.TrimPrefix(segment, "v")
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return Version{}, false
	}
	nums := make([]uint8, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Version{}, false
		}
		nums[i] = uint8(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], present: true}, true
}

// Present reports whether this is a real version, as opposed to the
// "absent" zero value.
func (v Version) Present() bool {
	return v.present
}

// String renders "vM_m_p", or "" when absent.
func (v Version) String() string {
	if !v.present {
		return ""
	}
	return fmt.Sprintf("v%d_%d_%d", v.Major, v.Minor, v.Patch)
}

// Suffix renders the Go-identifier-legal type-name disambiguator used when
// a type's scope carries a version: Go has no nested-module-inside-a-file
// construct, so the version is folded into the type name itself instead of
// a separate namespace, e.g. "V1_0_0". Returns "" when absent.
func (v Version) Suffix() string {
	if !v.present {
		return ""
	}
	return fmt.Sprintf("V%d_%d_%d", v.Major, v.Minor, v.Patch)
}

// Rank computes M*10000 + m*100 + p, the sort key used for EnumNewtype
// variant ordering. Absent versions rank 0.
func (v Version) Rank() uint32 {
	if !v.present {
		return 0
	}
	return uint32(v.Major)*10000 + uint32(v.Minor)*100 + uint32(v.Patch)
}

// Less implements the lexicographic ordering: absent sorts older than any
// present version.
func (v Version) Less(o Version) bool {
	if v.present != o.present {
		return !v.present
	}
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// Equal reports whether two versions are identical, including presence.
func (v Version) Equal(o Version) bool {
	return v.present == o.present && v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}
