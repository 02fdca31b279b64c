// Package wol dispatches wake-on-LAN magic packets over UDP broadcast.
package wol

import (
	"context"
	"fmt"
	"net"

	mdwol "github.com/mdlayher/wol"
)

const defaultBroadcastAddr = "255.255.255.255:9"

// Sender broadcasts magic packets to a fixed target address. It is a
// one-shot primitive: a nil return means the packet left this host, not
// that the remote machine woke.
type Sender struct {
	addr string
}

func NewSender(broadcastAddr string) *Sender {
	if broadcastAddr == "" {
		broadcastAddr = defaultBroadcastAddr
	}
	return &Sender{addr: broadcastAddr}
}

// Wake parses the MAC and sends a magic packet through a short-lived
// client. The sender holds no connection state between calls.
func (s *Sender) Wake(_ context.Context, mac string) error {
	target, err := net.ParseMAC(mac)
	if err != nil {
		return fmt.Errorf("parse mac %q: %w", mac, err)
	}

	client, err := mdwol.NewClient()
	if err != nil {
		return fmt.Errorf("wol client: %w", err)
	}
	defer client.Close()

	if err := client.Wake(s.addr, target); err != nil {
		return fmt.Errorf("send magic packet to %s via %s: %w", mac, s.addr, err)
	}
	return nil
}
