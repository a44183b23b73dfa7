// Package enumerate provides the interface enumerator adapter.
package enumerate

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"golang-persistent-eth/internal/pkg/logging"
	"golang-persistent-eth/internal/port"
	"golang-persistent-eth/internal/types"

	"golang.org/x/sys/unix"
)

// Enumerator is an adapter that implements the InterfaceEnumerator port on
// top of a LinkController. Each call reflects kernel state at call time.
type Enumerator struct {
	linkCtl port.LinkController
	timeout time.Duration
}

// Ensure Enumerator implements the InterfaceEnumerator port
var _ port.InterfaceEnumerator = (*Enumerator)(nil)

// NewEnumerator creates a new enumerator with the given per-query timeout.
func NewEnumerator(linkCtl port.LinkController, timeout time.Duration) *Enumerator {
	return &Enumerator{
		linkCtl: linkCtl,
		timeout: timeout,
	}
}

// ListInterfaces returns the live interfaces, loopback excluded, in kernel
// enumeration order. Failure to query is fatal for the caller: there is no
// usable partial view of link state.
func (e *Enumerator) ListInterfaces(ctx context.Context) ([]types.Interface, error) {
	logger := logging.WithComponent("enumerate")

	queryCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	links, err := e.linkCtl.ListLinks(queryCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query link state: %w", err)
	}

	var interfaces []types.Interface
	for _, link := range links {
		attrs := link.Attrs()
		if attrs.Flags&net.FlagLoopback != 0 {
			continue
		}

		iface := types.Interface{
			Name:       attrs.Name,
			MACAddress: strings.ToUpper(attrs.HardwareAddr.String()),
			LinkUp:     attrs.RawFlags&unix.IFF_LOWER_UP != 0,
		}
		interfaces = append(interfaces, iface)

		logger.WithFields(map[string]interface{}{
			"mac": iface.MACAddress,
			"up":  iface.LinkUp,
		}).WithField("interface", iface.Name).Debug("Observed interface")
	}

	return interfaces, nil
}
