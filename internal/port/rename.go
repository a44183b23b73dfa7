// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-persistent-eth/internal/types"
)

// InterfaceEnumerator is a port for observing the current link set.
// Implementations return a fresh snapshot on every call; callers must
// re-query after mutating link state rather than assume the outcome.
type InterfaceEnumerator interface {
	// ListInterfaces returns the live interfaces, loopback excluded, in
	// kernel enumeration order.
	ListInterfaces(ctx context.Context) ([]types.Interface, error)
}

// ConfigSource is a port for loading naming rules, keyed by source path.
type ConfigSource interface {
	Load() (map[string]types.ConfigRecord, error)
}

// InterfaceRenamer is the primary port for the rename pipeline.
// Implementations run the full quarantine/match/fallback sequence exactly
// once and report the outcome.
type InterfaceRenamer interface {
	// Run executes the rename pipeline and returns a summary of what was
	// renamed. It returns an error only when interface state cannot be
	// observed at all; individual rename failures are contained and counted
	// in the summary.
	Run(ctx context.Context) (types.Summary, error)
}
