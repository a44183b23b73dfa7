//go:build unit

package rename

import (
	"context"
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// fakeLink is one interface inside the fake kernel.
type fakeLink struct {
	name     string
	mac      string // canonical lowercase form, as the kernel reports it
	up       bool
	loopback bool
}

// fakeLinkController is an in-memory LinkController. It enforces the same
// constraints the kernel does: renames require the link to be down, and a
// name can only be held by one link at a time.
type fakeLinkController struct {
	links   []*fakeLink
	listErr error

	// failOnce maps a target name to an error returned by the next rename
	// to that name; the entry is consumed when it fires.
	failOnce map[string]error

	// renames records every successful rename as "old->new".
	renames []string
}

func newFakeLinkController(links ...*fakeLink) *fakeLinkController {
	return &fakeLinkController{
		links:    links,
		failOnce: make(map[string]error),
	}
}

func (f *fakeLinkController) ListLinks(ctx context.Context) ([]netlink.Link, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	out := make([]netlink.Link, 0, len(f.links))
	for _, l := range f.links {
		attrs := netlink.LinkAttrs{Name: l.name}
		if l.mac != "" {
			hw, err := net.ParseMAC(l.mac)
			if err != nil {
				return nil, err
			}
			attrs.HardwareAddr = hw
		}
		if l.up {
			attrs.RawFlags |= unix.IFF_LOWER_UP
		}
		if l.loopback {
			attrs.Flags |= net.FlagLoopback
		}
		out = append(out, &netlink.Dummy{LinkAttrs: attrs})
	}
	return out, nil
}

func (f *fakeLinkController) SetLinkDown(ctx context.Context, name string) error {
	link := f.find(name)
	if link == nil {
		return fmt.Errorf("no such device: %s", name)
	}
	link.up = false
	return nil
}

func (f *fakeLinkController) SetLinkName(ctx context.Context, name, newName string) error {
	link := f.find(name)
	if link == nil {
		return fmt.Errorf("no such device: %s", name)
	}
	if link.up {
		return fmt.Errorf("device %s is busy", name)
	}
	if err, ok := f.failOnce[newName]; ok {
		delete(f.failOnce, newName)
		return err
	}
	if other := f.find(newName); other != nil && other != link {
		return fmt.Errorf("name %s already in use", newName)
	}
	link.name = newName
	f.renames = append(f.renames, name+"->"+newName)
	return nil
}

func (f *fakeLinkController) SetLinkUp(ctx context.Context, name string) error {
	link := f.find(name)
	if link == nil {
		return fmt.Errorf("no such device: %s", name)
	}
	link.up = true
	return nil
}

func (f *fakeLinkController) find(name string) *fakeLink {
	for _, l := range f.links {
		if l.name == name {
			return l
		}
	}
	return nil
}

// nameByMAC returns the current name of the link with the given canonical
// MAC.
func (f *fakeLinkController) nameByMAC(mac string) string {
	for _, l := range f.links {
		if l.mac == mac {
			return l.name
		}
	}
	return ""
}
