package gateway

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/net/ipv4"

	"github.com/siso-dis/cdis-gateway/internal/metrics"
)

// maxDatagramSize bounds a single UDP read. DIS/C-DIS datagrams are small
// PDU batches; 64KiB safely covers the UDP maximum payload.
const maxDatagramSize = 65507

// Endpoint owns one UDP socket shared by a read task and a write task, per
// spec.md §4.D's "two UDP sockets, each with a read task and a write task".
type Endpoint struct {
	name string
	conn *net.UDPConn
}

// OpenEndpoint binds a UDP socket for cfg, joining the configured multicast
// group if one is set.
func OpenEndpoint(name string, cfg SocketConfig) (*Endpoint, error) {
	addr := &net.UDPAddr{IP: net.ParseIP(cfg.Address), Port: cfg.Port}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("gateway: opening %s endpoint: %w", name, err)
	}

	if cfg.MulticastGroup != "" {
		group := net.ParseIP(cfg.MulticastGroup)
		if group == nil {
			conn.Close()
			return nil, fmt.Errorf("gateway: %s endpoint: invalid multicast_group %q", name, cfg.MulticastGroup)
		}
		pc := ipv4.NewPacketConn(conn)
		var iface *net.Interface
		if cfg.MulticastInterface != "" {
			iface, err = net.InterfaceByName(cfg.MulticastInterface)
			if err != nil {
				conn.Close()
				return nil, fmt.Errorf("gateway: %s endpoint: multicast_interface %q: %w", name, cfg.MulticastInterface, err)
			}
		}
		if err := pc.JoinGroup(iface, &net.UDPAddr{IP: group}); err != nil {
			conn.Close()
			return nil, fmt.Errorf("gateway: %s endpoint: joining multicast group %s: %w", name, cfg.MulticastGroup, err)
		}
		if cfg.MulticastTTL > 0 {
			if err := pc.SetMulticastTTL(cfg.MulticastTTL); err != nil {
				conn.Close()
				return nil, fmt.Errorf("gateway: %s endpoint: setting multicast TTL: %w", name, err)
			}
		}
	}

	return &Endpoint{name: name, conn: conn}, nil
}

// Close releases the underlying socket. It is safe to call once from
// Shutdown's first phase to stop new ingress.
func (e *Endpoint) Close() error { return e.conn.Close() }

// ReadLoop reads datagrams until ctx is canceled or the socket is closed,
// delivering each one to out. It never blocks past ctx cancellation because
// Close unblocks the pending ReadFromUDP call.
func (e *Endpoint) ReadLoop(ctx context.Context, edge StatEdge, out chan []byte) error {
	buf := make([]byte, maxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, _, err := e.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("gateway: %s endpoint read: %w", e.name, err)
		}
		metrics.PacketsReceived.WithLabelValues(e.name).Inc()
		metrics.BytesReceived.WithLabelValues(e.name).Add(float64(n))

		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		SendDropOldest(edge, out, datagram)
	}
}

// WriteLoop sends every datagram read from in to dest until in is closed or
// ctx is canceled. It drains any already-queued datagrams even after ctx is
// canceled, so long as in still has buffered work, matching the "write
// sockets flush pending packets during phase 2" shutdown rule in spec.md §7.
func (e *Endpoint) WriteLoop(ctx context.Context, in <-chan []byte, dest *net.UDPAddr) error {
	for {
		select {
		case datagram, ok := <-in:
			if !ok {
				return nil
			}
			if _, err := e.conn.WriteToUDP(datagram, dest); err != nil {
				return fmt.Errorf("gateway: %s endpoint write: %w", e.name, err)
			}
		case <-ctx.Done():
			select {
			case datagram, ok := <-in:
				if !ok {
					return nil
				}
				if _, err := e.conn.WriteToUDP(datagram, dest); err != nil {
					return fmt.Errorf("gateway: %s endpoint write: %w", e.name, err)
				}
			default:
				return nil
			}
		}
	}
}
