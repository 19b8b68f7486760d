//go:build linux

package socketcan

import (
	"net"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/railmod/cbusgw/internal/cbus"
)

// Bus is an open raw CAN socket with reader/writer goroutines. Frames
// from the bus that do not decode as CBUS (foreign traffic, unknown
// opcodes) are dropped silently; the bus is a shared medium.
type Bus struct {
	fd int
	rx chan cbus.Frame
	tx chan Msg

	done      chan struct{}
	closeOnce sync.Once
}

func Open(ifname string) (*Bus, error) {
	iface, err := net.InterfaceByName(ifname)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, unix.CAN_RAW)
	if err != nil {
		return nil, err
	}
	if err := unix.Bind(fd, &unix.SockaddrCAN{Ifindex: iface.Index}); err != nil {
		unix.Close(fd)
		return nil, err
	}

	b := &Bus{
		fd:   fd,
		rx:   make(chan cbus.Frame, 16),
		tx:   make(chan Msg),
		done: make(chan struct{}),
	}
	go b.reader()
	go b.writer()
	return b, nil
}

// Recv is the stream of decoded CBUS frames arriving from the bus. The
// channel closes when the bus does.
func (b *Bus) Recv() <-chan cbus.Frame { return b.rx }

func (b *Bus) Send(f cbus.Frame) error {
	select {
	case b.tx <- FromFrame(f):
		return nil
	case <-b.done:
		return net.ErrClosed
	}
}

func (b *Bus) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		unix.Close(b.fd)
	})
	return nil
}

func (b *Bus) reader() {
	defer close(b.rx)
	raw := make([]byte, frameLen)
	for {
		n, err := unix.Read(b.fd, raw)
		if err != nil || n == 0 {
			select {
			case <-b.done:
				return
			default:
			}
			if err == unix.EINTR {
				continue
			}
			return
		}
		msg, err := UnmarshalMsg(raw[:n])
		if err != nil {
			continue
		}
		frame, err := ToFrame(msg)
		if err != nil {
			continue
		}
		select {
		case b.rx <- frame:
		case <-b.done:
			return
		}
	}
}

func (b *Bus) writer() {
	for {
		select {
		case msg := <-b.tx:
			raw, err := msg.MarshalBinary()
			if err != nil {
				continue
			}
			unix.Write(b.fd, raw)
		case <-b.done:
			return
		}
	}
}
