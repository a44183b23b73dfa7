// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"github.com/vishvananda/netlink"
)

// LinkController is a port for link-layer interface operations.
// This interface abstracts netlink operations so the rename passes can be
// tested against an in-memory implementation. Every call is synchronous and
// bounded by the context deadline; an expired deadline surfaces as an error
// on that call, never as a hang.
type LinkController interface {
	// ListLinks returns the current link set, loopback included
	ListLinks(ctx context.Context) ([]netlink.Link, error)

	// SetLinkDown takes the named interface administratively down
	SetLinkDown(ctx context.Context, name string) error

	// SetLinkName renames the named interface; the interface must be down
	SetLinkName(ctx context.Context, name, newName string) error

	// SetLinkUp brings the named interface up
	SetLinkUp(ctx context.Context, name string) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// Glob returns the names of files matching the shell pattern
	Glob(pattern string) ([]string, error)

	// CopyFile copies src to dst with the given permissions
	CopyFile(src, dst string, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// ServiceManager is a port for init/service manager operations used by the
// installer.
type ServiceManager interface {
	// DaemonReload reloads the service manager configuration
	DaemonReload(ctx context.Context) error

	// EnableUnit enables the named unit so it runs at boot
	EnableUnit(ctx context.Context, unit string) error
}
