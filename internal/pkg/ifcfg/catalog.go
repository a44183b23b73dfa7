// Package ifcfg loads interface naming rules from ifcfg-style files.
//
// Each file holds KEY=VALUE lines. HWADDR is the matching key; DEVICE is the
// preferred target name, NAME the fallback. Files named for VLAN
// sub-interfaces (a colon in the file name) are skipped entirely.
package ifcfg

import (
	"path/filepath"
	"sort"
	"strings"

	"golang-persistent-eth/internal/pkg/logging"
	"golang-persistent-eth/internal/port"
	"golang-persistent-eth/internal/types"
)

// filePattern selects the per-interface files inside the config directory.
const filePattern = "ifcfg-eth*"

// Catalog loads and indexes configuration records from a directory of
// ifcfg files.
type Catalog struct {
	configDir string
	fileMgr   port.FileManager
}

// NewCatalog creates a catalog over the given configuration directory.
func NewCatalog(configDir string, fileMgr port.FileManager) *Catalog {
	return &Catalog{
		configDir: configDir,
		fileMgr:   fileMgr,
	}
}

// Load scans the configuration directory and returns one record per
// readable ifcfg file, keyed by source path. Unreadable files and records
// with missing fields are logged and skipped or kept inert; neither aborts
// the load.
func (c *Catalog) Load() (map[string]types.ConfigRecord, error) {
	logger := logging.WithComponent("catalog")

	paths, err := c.fileMgr.Glob(filepath.Join(c.configDir, filePattern))
	if err != nil {
		return nil, err
	}

	records := make(map[string]types.ConfigRecord)
	for _, path := range paths {
		if strings.Contains(filepath.Base(path), ":") {
			// VLAN sub-interface definition, out of scope
			logger.WithField("file", path).Debug("Skipping VLAN definition")
			continue
		}

		data, err := c.fileMgr.ReadFile(path)
		if err != nil {
			logger.WithError(err).WithField("file", path).Warn("Failed to read config file, skipping")
			continue
		}

		record := buildRecord(path, parsePairs(string(data)))
		if !record.HasMatchKey() {
			logger.WithField("file", path).Warn("Config file has no HWADDR, record will never match")
		} else if !record.HasTarget() {
			logger.WithField("file", path).Warn("Config file has neither DEVICE nor NAME, record is inert")
		}
		records[path] = record
	}

	logger.WithField("count", len(records)).Info("Loaded interface naming rules")
	return records, nil
}

// SortedRecords returns the records ordered by source path, so matching
// iterates the catalog in a reproducible order.
func SortedRecords(records map[string]types.ConfigRecord) []types.ConfigRecord {
	paths := make([]string, 0, len(records))
	for path := range records {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]types.ConfigRecord, 0, len(records))
	for _, path := range paths {
		out = append(out, records[path])
	}
	return out
}

// parsePairs splits KEY=VALUE lines into an uppercase map. Lines without
// an equals sign are ignored.
func parsePairs(input string) map[string]string {
	pairs := make(map[string]string)
	for _, line := range strings.Split(input, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		pairs[strings.ToUpper(strings.TrimSpace(key))] = strings.ToUpper(strings.TrimSpace(value))
	}
	return pairs
}

// buildRecord derives a ConfigRecord from parsed pairs. DEVICE wins over
// NAME; target names are lowercased, and quoting on either field is
// stripped.
func buildRecord(path string, pairs map[string]string) types.ConfigRecord {
	record := types.ConfigRecord{
		SourcePath: path,
		MACAddress: stripQuotes(pairs["HWADDR"]),
	}

	if device, ok := pairs["DEVICE"]; ok {
		record.DesiredName = strings.ToLower(stripQuotes(device))
	} else if name, ok := pairs["NAME"]; ok {
		record.DesiredName = strings.ToLower(stripQuotes(name))
	}

	return record
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
