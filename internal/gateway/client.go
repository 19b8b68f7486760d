package gateway

import (
	"bufio"
	"io"
	"net"

	"github.com/railmod/cbusgw/internal/cbus"
)

// Client is the dialing side of the GridConnect TCP bridge.
type Client struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

func Dial(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(conn)
	scanner.Split(ScanFrames)
	return &Client{conn: conn, scanner: scanner}, nil
}

func (c *Client) Send(f cbus.Frame) error {
	_, err := io.WriteString(c.conn, f.EncodeASCII())
	return err
}

// Recv blocks for the next frame from the gateway. io.EOF reports an
// orderly close.
func (c *Client) Recv() (cbus.Frame, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return cbus.Frame{}, err
		}
		return cbus.Frame{}, io.EOF
	}
	return cbus.DecodeASCII(c.scanner.Text())
}

func (c *Client) Close() error { return c.conn.Close() }
