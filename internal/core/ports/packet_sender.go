package ports

import "context"

// PacketSender dispatches a wake-on-LAN magic packet to the machine with
// the given MAC address. Success means the packet was sent, not that the
// machine woke.
type PacketSender interface {
	Wake(ctx context.Context, mac string) error
}
