// Package rename implements the three-pass interface rename pipeline.
//
// Pass 1 quarantines every interface under a synthetic temp name, so no
// interface can hold another's final target when pass 2 applies the
// configured names by MAC address. Pass 3 hands out the lowest free ethN
// names to whatever pass 2 left behind. Link state is re-queried between
// passes; the outcome of a rename is never assumed.
package rename

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-persistent-eth/internal/pkg/ifcfg"
	"golang-persistent-eth/internal/pkg/logging"
	"golang-persistent-eth/internal/port"
	"golang-persistent-eth/internal/types"

	"github.com/sirupsen/logrus"
)

// Engine drives the rename passes. It implements the InterfaceRenamer port.
type Engine struct {
	linkCtl    port.LinkController
	enumerator port.InterfaceEnumerator
	configs    port.ConfigSource
	tempPrefix string
	timeout    time.Duration
}

// Ensure Engine implements the InterfaceRenamer port
var _ port.InterfaceRenamer = (*Engine)(nil)

// NewEngine creates a rename engine. tempPrefix must lie outside the ethN
// namespace; timeout bounds each individual link command.
func NewEngine(linkCtl port.LinkController, enumerator port.InterfaceEnumerator, configs port.ConfigSource, tempPrefix string, timeout time.Duration) *Engine {
	return &Engine{
		linkCtl:    linkCtl,
		enumerator: enumerator,
		configs:    configs,
		tempPrefix: tempPrefix,
		timeout:    timeout,
	}
}

// Run executes the full pipeline once. Only the inability to observe link
// state aborts the run; per-interface rename failures are logged, counted
// and skipped.
func (e *Engine) Run(ctx context.Context) (types.Summary, error) {
	logger := logging.WithComponent("rename")
	var summary types.Summary

	logger.Info("Gathering previous name association")
	interfaces, err := e.enumerator.ListInterfaces(ctx)
	if err != nil {
		return summary, err
	}
	summary.Total = len(interfaces)

	e.quarantine(ctx, interfaces, &summary)
	logger.Info("Renamed all interfaces to temporary device names")

	records, err := e.configs.Load()
	if err != nil {
		return summary, fmt.Errorf("failed to load naming rules: %w", err)
	}

	interfaces, err = e.enumerator.ListInterfaces(ctx)
	if err != nil {
		return summary, err
	}

	logger.Info("Applying names from HWADDR flags in configuration files")
	e.match(ctx, interfaces, ifcfg.SortedRecords(records), &summary)

	logger.WithFields(logrus.Fields{
		"assigned": summary.Matched,
		"unnamed":  summary.Unnamed(),
	}).Info("Match pass complete")

	if summary.Unnamed() > 0 {
		interfaces, err = e.enumerator.ListInterfaces(ctx)
		if err != nil {
			return summary, err
		}

		logger.Info("Assigning arbitrary ethN names to unmatched interfaces")
		e.fallback(ctx, interfaces, &summary)
	}

	// Diagnostic only: report the resulting name table.
	interfaces, err = e.enumerator.ListInterfaces(ctx)
	if err != nil {
		return summary, err
	}
	for _, iface := range interfaces {
		logger.WithFields(logrus.Fields{
			"mac": iface.MACAddress,
			"up":  iface.LinkUp,
		}).WithField("interface", iface.Name).Info("Final naming scheme")
	}

	return summary, nil
}

// quarantine moves every interface to a temp<index> name. Temp names are
// disjoint from every possible final target, so later renames can never
// collide with an interface that has not been processed yet.
func (e *Engine) quarantine(ctx context.Context, interfaces []types.Interface, summary *types.Summary) {
	for i, iface := range interfaces {
		tempName := fmt.Sprintf("%s%d", e.tempPrefix, i)
		if err := e.renameLink(ctx, iface.Name, tempName); err != nil {
			logging.WithComponentAndInterface("rename", iface.Name).
				WithError(err).WithField("target", tempName).
				Error("Failed to quarantine interface")
			summary.Failed++
		}
	}
}

// match renames each interface whose MAC address a record matches to that
// record's desired name. The first matching record wins and scanning stops
// for that interface; records are pre-sorted by source path so the choice
// is reproducible.
func (e *Engine) match(ctx context.Context, interfaces []types.Interface, records []types.ConfigRecord, summary *types.Summary) {
	for _, iface := range interfaces {
		record, ok := e.findRecord(iface, records)
		if !ok {
			continue
		}

		logger := logging.WithComponentAndInterface("rename", iface.Name).WithFields(logrus.Fields{
			"target": record.DesiredName,
			"source": record.SourcePath,
		})

		if err := e.renameLink(ctx, iface.Name, record.DesiredName); err != nil {
			logger.WithError(err).Error("Failed to apply configured name")
			summary.Failed++
			continue
		}

		logger.Info("Applied configured name")
		summary.Matched++
	}
}

// findRecord returns the first usable record matching the interface's MAC.
// Matching is substring containment, as it has always been: a record whose
// HWADDR is a fragment of the full address still matches, and is logged
// when it does.
func (e *Engine) findRecord(iface types.Interface, records []types.ConfigRecord) (types.ConfigRecord, bool) {
	for _, record := range records {
		if !record.HasMatchKey() || !record.HasTarget() {
			continue
		}
		if !strings.Contains(iface.MACAddress, record.MACAddress) {
			continue
		}
		if len(record.MACAddress) < len(iface.MACAddress) {
			logging.WithComponentAndInterface("rename", iface.Name).WithFields(logrus.Fields{
				"fragment": record.MACAddress,
				"source":   record.SourcePath,
			}).Warn("Partial hardware address fragment matched")
		}
		return record, true
	}
	return types.ConfigRecord{}, false
}

// fallback assigns the lowest free ethN name to every interface the match
// pass did not reach. An interface counts as named once "eth" appears in
// its current name.
func (e *Engine) fallback(ctx context.Context, interfaces []types.Interface, summary *types.Summary) {
	used := make(map[string]bool, len(interfaces))
	for _, iface := range interfaces {
		used[iface.Name] = true
	}

	for _, iface := range interfaces {
		if strings.Contains(iface.Name, "eth") {
			continue
		}

		target := lowestFree(used)
		logger := logging.WithComponentAndInterface("rename", iface.Name).WithField("target", target)

		if err := e.renameLink(ctx, iface.Name, target); err != nil {
			logger.WithError(err).Error("Failed to assign fallback name")
			summary.Failed++
			continue
		}

		delete(used, iface.Name)
		used[target] = true
		logger.Info("Assigned fallback name")
		summary.Fallback++
	}
}

// lowestFree returns the lowest-numbered ethN not currently in use.
func lowestFree(used map[string]bool) string {
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("eth%d", n)
		if !used[candidate] {
			return candidate
		}
	}
}

// renameLink executes one down → rename → up sequence, each step bounded
// by the per-operation timeout. If the rename itself fails the link is
// brought back up under its old name, best effort, so a busy device is
// left usable for a later pass.
func (e *Engine) renameLink(ctx context.Context, name, newName string) error {
	if err := e.bounded(ctx, func(opCtx context.Context) error {
		return e.linkCtl.SetLinkDown(opCtx, name)
	}); err != nil {
		return fmt.Errorf("failed to bring %s down: %w", name, err)
	}

	if err := e.bounded(ctx, func(opCtx context.Context) error {
		return e.linkCtl.SetLinkName(opCtx, name, newName)
	}); err != nil {
		if upErr := e.bounded(ctx, func(opCtx context.Context) error {
			return e.linkCtl.SetLinkUp(opCtx, name)
		}); upErr != nil {
			logging.WithComponentAndInterface("rename", name).WithError(upErr).
				Warn("Failed to restore link after rename failure")
		}
		return fmt.Errorf("failed to rename %s to %s: %w", name, newName, err)
	}

	if err := e.bounded(ctx, func(opCtx context.Context) error {
		return e.linkCtl.SetLinkUp(opCtx, newName)
	}); err != nil {
		return fmt.Errorf("failed to bring %s up: %w", newName, err)
	}

	return nil
}

func (e *Engine) bounded(ctx context.Context, fn func(context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return fn(opCtx)
}
