//go:build unit

package rename

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang-persistent-eth/internal/adapter/enumerate"
	"golang-persistent-eth/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfigSource struct {
	records map[string]types.ConfigRecord
}

func (s stubConfigSource) Load() (map[string]types.ConfigRecord, error) {
	return s.records, nil
}

func newTestEngine(linkCtl *fakeLinkController, records map[string]types.ConfigRecord) *Engine {
	enumerator := enumerate.NewEnumerator(linkCtl, time.Second)
	return NewEngine(linkCtl, enumerator, stubConfigSource{records: records}, "temp", time.Second)
}

func record(path, mac, name string) (string, types.ConfigRecord) {
	return path, types.ConfigRecord{SourcePath: path, MACAddress: mac, DesiredName: name}
}

func assertUniqueNames(t *testing.T, linkCtl *fakeLinkController) {
	t.Helper()
	seen := make(map[string]bool)
	for _, l := range linkCtl.links {
		assert.False(t, seen[l.name], "duplicate name %s", l.name)
		seen[l.name] = true
	}
}

func TestEngine_Run_MatchedInterface(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:ff", up: true},
	)
	path, rec := record("/etc/sysconfig/network-scripts/ifcfg-eth0", "AA:BB:CC:DD:EE:FF", "eth0")

	engine := newTestEngine(linkCtl, map[string]types.ConfigRecord{path: rec})
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 0, summary.Fallback)
	assert.Equal(t, 0, summary.Failed)
}

func TestEngine_Run_QuarantinePrecedesFinalNames(t *testing.T) {
	// Two interfaces already holding each other's target name. Without the
	// quarantine pass one of the final renames would collide.
	linkCtl := newFakeLinkController(
		&fakeLink{name: "eth1", mac: "aa:aa:aa:aa:aa:01", up: true},
		&fakeLink{name: "eth0", mac: "aa:aa:aa:aa:aa:02", up: true},
	)
	records := make(map[string]types.ConfigRecord)
	p0, r0 := record("/cfg/ifcfg-eth0", "AA:AA:AA:AA:AA:01", "eth0")
	p1, r1 := record("/cfg/ifcfg-eth1", "AA:AA:AA:AA:AA:02", "eth1")
	records[p0] = r0
	records[p1] = r1

	engine := newTestEngine(linkCtl, records)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Matched)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:aa:aa:aa:aa:01"))
	assert.Equal(t, "eth1", linkCtl.nameByMAC("aa:aa:aa:aa:aa:02"))

	// The first renames of the run must all land in the temp namespace.
	require.GreaterOrEqual(t, len(linkCtl.renames), 2)
	assert.Equal(t, "eth1->temp0", linkCtl.renames[0])
	assert.Equal(t, "eth0->temp1", linkCtl.renames[1])
	assertUniqueNames(t, linkCtl)
}

func TestEngine_Run_FallbackPicksLowestFreeName(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:ff", up: true},
		&fakeLink{name: "enp0s8", mac: "11:22:33:44:55:66", up: true},
		&fakeLink{name: "enp0s9", mac: "11:22:33:44:55:77", up: false},
	)
	path, rec := record("/cfg/ifcfg-eth0", "AA:BB:CC:DD:EE:FF", "eth0")

	engine := newTestEngine(linkCtl, map[string]types.ConfigRecord{path: rec})
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	// eth0 is taken by the matched interface, so fallback starts at eth1.
	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, "eth1", linkCtl.nameByMAC("11:22:33:44:55:66"))
	assert.Equal(t, "eth2", linkCtl.nameByMAC("11:22:33:44:55:77"))
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 2, summary.Fallback)
	assertUniqueNames(t, linkCtl)
}

func TestEngine_Run_NoConfigAllFallback(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
		&fakeLink{name: "enp0s8", mac: "aa:bb:cc:dd:ee:02", up: true},
	)

	engine := newTestEngine(linkCtl, nil)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:01"))
	assert.Equal(t, "eth1", linkCtl.nameByMAC("aa:bb:cc:dd:ee:02"))
	assert.Equal(t, 0, summary.Matched)
	assert.Equal(t, 2, summary.Fallback)
}

func TestEngine_Run_LoopbackIgnored(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "lo", mac: "", up: true, loopback: true},
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
	)

	engine := newTestEngine(linkCtl, nil)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	lo := linkCtl.find("lo")
	require.NotNil(t, lo)
	assert.True(t, lo.up)
}

func TestEngine_Run_FirstMatchWins(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:ff", up: true},
	)
	records := make(map[string]types.ConfigRecord)
	p0, r0 := record("/cfg/ifcfg-eth0", "AA:BB:CC:DD:EE:FF", "eth0")
	p1, r1 := record("/cfg/ifcfg-eth1", "AA:BB:CC:DD:EE:FF", "eth1")
	records[p0] = r0
	records[p1] = r1

	engine := newTestEngine(linkCtl, records)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	// Records are scanned in source path order; ifcfg-eth0 comes first.
	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, 1, summary.Matched)
}

func TestEngine_Run_PartialFragmentMatches(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:ff", up: true},
	)
	path, rec := record("/cfg/ifcfg-eth0", "CC:DD:EE", "eth0")

	engine := newTestEngine(linkCtl, map[string]types.ConfigRecord{path: rec})
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, 1, summary.Matched)
}

func TestEngine_Run_InertRecordsNeverMatch(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:ff", up: true},
	)
	records := map[string]types.ConfigRecord{
		"/cfg/ifcfg-eth0": {SourcePath: "/cfg/ifcfg-eth0", MACAddress: "AA:BB:CC:DD:EE:FF"}, // no target name
		"/cfg/ifcfg-eth1": {SourcePath: "/cfg/ifcfg-eth1", DesiredName: "eth1"},             // no match key
	}

	engine := newTestEngine(linkCtl, records)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Matched)
	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, 1, summary.Fallback)
}

func TestEngine_Run_PartialFailureContainment(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
		&fakeLink{name: "enp0s8", mac: "aa:bb:cc:dd:ee:02", up: true},
	)
	records := make(map[string]types.ConfigRecord)
	p0, r0 := record("/cfg/ifcfg-eth0", "AA:BB:CC:DD:EE:01", "eth0")
	p1, r1 := record("/cfg/ifcfg-eth1", "AA:BB:CC:DD:EE:02", "eth1")
	records[p0] = r0
	records[p1] = r1

	// First rename to eth0 fails (device busy); the run must continue.
	linkCtl.failOnce["eth0"] = assert.AnError

	engine := newTestEngine(linkCtl, records)
	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "eth1", linkCtl.nameByMAC("aa:bb:cc:dd:ee:02"))

	// The failed interface still lacks "eth" in its temp name, so the
	// fallback pass picks it up; eth0 is the lowest free name.
	assert.Equal(t, 1, summary.Fallback)
	assert.Equal(t, "eth0", linkCtl.nameByMAC("aa:bb:cc:dd:ee:01"))
	assertUniqueNames(t, linkCtl)
}

func TestEngine_Run_QueryFailureIsFatal(t *testing.T) {
	linkCtl := newFakeLinkController()
	linkCtl.listErr = assert.AnError

	engine := newTestEngine(linkCtl, nil)
	_, err := engine.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query link state")
}

func TestEngine_Run_Idempotence(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
		&fakeLink{name: "enp0s8", mac: "aa:bb:cc:dd:ee:02", up: true},
		&fakeLink{name: "enp0s9", mac: "aa:bb:cc:dd:ee:03", up: true},
	)
	path, rec := record("/cfg/ifcfg-eth0", "AA:BB:CC:DD:EE:02", "eth0")
	records := map[string]types.ConfigRecord{path: rec}

	engine := newTestEngine(linkCtl, records)
	_, err := engine.Run(context.Background())
	require.NoError(t, err)

	firstRun := make(map[string]string)
	for _, l := range linkCtl.links {
		firstRun[l.mac] = l.name
	}

	// Second run observes the first run's final names and must reproduce
	// the same assignment.
	_, err = engine.Run(context.Background())
	require.NoError(t, err)

	for _, l := range linkCtl.links {
		assert.Equal(t, firstRun[l.mac], l.name, "mac %s changed name between runs", l.mac)
	}
	assertUniqueNames(t, linkCtl)
}

func TestEngine_Run_LinksComeBackUp(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
	)

	engine := newTestEngine(linkCtl, nil)
	_, err := engine.Run(context.Background())
	require.NoError(t, err)

	for _, l := range linkCtl.links {
		assert.True(t, l.up, "link %s left down", l.name)
	}
}

func TestEngine_Run_TempNamesDisjointFromTargets(t *testing.T) {
	linkCtl := newFakeLinkController(
		&fakeLink{name: "enp0s3", mac: "aa:bb:cc:dd:ee:01", up: true},
		&fakeLink{name: "enp0s8", mac: "aa:bb:cc:dd:ee:02", up: true},
	)

	engine := newTestEngine(linkCtl, nil)
	_, err := engine.Run(context.Background())
	require.NoError(t, err)

	for i, r := range linkCtl.renames[:2] {
		parts := strings.Split(r, "->")
		require.Len(t, parts, 2)
		assert.True(t, strings.HasPrefix(parts[1], "temp"), "rename %d target %s not in temp namespace", i, parts[1])
		assert.NotContains(t, parts[1], "eth")
	}
}
