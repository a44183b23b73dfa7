// Package types defines common types used across the application.
package types

// Interface represents one network link as observed at enumeration time.
// It is re-derived from the kernel on every enumeration; only MACAddress is
// stable across calls, since Name changes as the rename passes progress.
type Interface struct {
	Name       string // current kernel name, unique at any instant
	MACAddress string // uppercase hardware address, the matching key
	LinkUp     bool   // carrier present (LOWER_UP)
}

// ConfigRecord represents one administrator-authored naming rule parsed
// from an ifcfg file.
type ConfigRecord struct {
	SourcePath  string // origin file, for diagnostics
	MACAddress  string // uppercase HWADDR value, quotes stripped; empty means the record can never match
	DesiredName string // DEVICE if present, else NAME; lowercase, quotes stripped; empty means the record is inert
}

// HasMatchKey reports whether the record carries a hardware address to
// match against.
func (r ConfigRecord) HasMatchKey() bool {
	return r.MACAddress != ""
}

// HasTarget reports whether the record carries a target name to assign.
func (r ConfigRecord) HasTarget() bool {
	return r.DesiredName != ""
}

// Summary is the outcome of one full rename run.
type Summary struct {
	Total    int // interfaces seen in the initial enumeration
	Matched  int // renamed from a config record in the match pass
	Fallback int // assigned an arbitrary ethN name in the fallback pass
	Failed   int // individual rename sequences that failed across all passes
}

// Unnamed returns the number of interfaces the match pass left without a
// configured name.
func (s Summary) Unnamed() int {
	return s.Total - s.Matched
}
