package refdata

import "strings"

// TimezoneIndex resolves human timezone aliases to IANA identifiers and
// back. Built from CLDR/tzdata/geonames data upstream; this package only
// consumes the resulting alias table.
type TimezoneIndex struct {
	aliasToIANA map[string]string
	ianaToName  map[string]string
}

// NewTimezoneIndex builds an index from alias -> IANA pairs.
func NewTimezoneIndex(aliases map[string]string) *TimezoneIndex {
	idx := &TimezoneIndex{
		aliasToIANA: make(map[string]string, len(aliases)),
		ianaToName:  make(map[string]string, len(aliases)),
	}
	for alias, iana := range aliases {
		idx.aliasToIANA[strings.ToLower(alias)] = iana
		if _, exists := idx.ianaToName[iana]; !exists {
			idx.ianaToName[iana] = alias
		}
	}
	return idx
}

// Resolve maps an alias (or an already-canonical IANA name) to its IANA id.
func (idx *TimezoneIndex) Resolve(name string) (string, bool) {
	if iana, ok := idx.aliasToIANA[strings.ToLower(name)]; ok {
		return iana, true
	}
	// Already an IANA-shaped name (contains a '/' or is a known zone like
	// "UTC"); accept unchanged so normalization is idempotent.
	if strings.Contains(name, "/") || name == "UTC" {
		return name, true
	}
	return "", false
}

// DisplayName returns a human name for an IANA id, if known.
func (idx *TimezoneIndex) DisplayName(iana string) (string, bool) {
	n, ok := idx.ianaToName[iana]
	return n, ok
}

// BuiltinTimezoneAliases is a representative alias table.
func BuiltinTimezoneAliases() map[string]string {
	return map[string]string{
		"UTC":           "Etc/UTC",
		"GMT":           "Etc/UTC",
		"EST":           "America/New_York",
		"EDT":           "America/New_York",
		"PST":           "America/Los_Angeles",
		"PDT":           "America/Los_Angeles",
		"CST":           "America/Chicago",
		"CDT":           "America/Chicago",
		"New York":      "America/New_York",
		"Los Angeles":   "America/Los_Angeles",
		"Chicago":       "America/Chicago",
		"London":        "Europe/London",
		"Paris":         "Europe/Paris",
		"Tokyo":         "Asia/Tokyo",
		"Hong Kong":     "Asia/Hong_Kong",
		"Sydney":        "Australia/Sydney",
		"Japan":         "Asia/Tokyo",
		"China":         "Asia/Shanghai",
	}
}
