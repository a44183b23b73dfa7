// Package netlink provides the link controller adapter implementation.
package netlink

import (
	"context"
	"fmt"

	"golang-persistent-eth/internal/port"

	"github.com/vishvananda/netlink"
)

// ControllerAdapter is an adapter that implements the LinkController port
// using the vishvananda/netlink library.
type ControllerAdapter struct{}

// Ensure ControllerAdapter implements the LinkController port
var _ port.LinkController = (*ControllerAdapter)(nil)

// NewControllerAdapter creates a new link controller adapter.
func NewControllerAdapter() *ControllerAdapter {
	return &ControllerAdapter{}
}

// ListLinks returns the current link set.
func (c *ControllerAdapter) ListLinks(ctx context.Context) ([]netlink.Link, error) {
	var links []netlink.Link
	err := c.bounded(ctx, "list links", func() error {
		var err error
		links, err = netlink.LinkList()
		return err
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// SetLinkDown takes the named interface administratively down.
func (c *ControllerAdapter) SetLinkDown(ctx context.Context, name string) error {
	return c.bounded(ctx, fmt.Sprintf("set link %s down", name), func() error {
		link, err := netlink.LinkByName(name)
		if err != nil {
			return err
		}
		return netlink.LinkSetDown(link)
	})
}

// SetLinkName renames the named interface. The kernel rejects renames of
// interfaces that are up, so callers must take the link down first.
func (c *ControllerAdapter) SetLinkName(ctx context.Context, name, newName string) error {
	return c.bounded(ctx, fmt.Sprintf("rename link %s to %s", name, newName), func() error {
		link, err := netlink.LinkByName(name)
		if err != nil {
			return err
		}
		return netlink.LinkSetName(link, newName)
	})
}

// SetLinkUp brings the named interface up.
func (c *ControllerAdapter) SetLinkUp(ctx context.Context, name string) error {
	return c.bounded(ctx, fmt.Sprintf("set link %s up", name), func() error {
		link, err := netlink.LinkByName(name)
		if err != nil {
			return err
		}
		return netlink.LinkSetUp(link)
	})
}

// bounded runs fn honoring the context deadline. Netlink calls have no
// timeout of their own; a stuck call surfaces as the context error instead
// of hanging the whole run.
func (c *ControllerAdapter) bounded(ctx context.Context, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("failed to %s: %w", op, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to %s: %w", op, err)
		}
		return nil
	}
}
