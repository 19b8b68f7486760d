//go:build !linux

package socketcan

import "github.com/railmod/cbusgw/internal/cbus"

// Bus requires Linux SocketCAN; this stub keeps callers compiling on
// other platforms.
type Bus struct{}

func Open(ifname string) (*Bus, error) { return nil, ErrUnsupported }

func (b *Bus) Recv() <-chan cbus.Frame { return nil }

func (b *Bus) Send(cbus.Frame) error { return ErrUnsupported }

func (b *Bus) Close() error { return nil }
