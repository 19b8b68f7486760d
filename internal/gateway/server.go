// Package gateway bridges the CBUS wire codec onto TCP, speaking the
// GridConnect line protocol that serial/USB bridges and host software
// use.
//
// Ownership boundary:
// - framing GridConnect lines out of a TCP byte stream
// - the listening gateway (decode, log, forward DCC traffic to a sink)
// - the dialing client used by host tools
//
// The gateway never interprets message payloads beyond opcode kind;
// typed decoding belongs to callers holding the frames.
package gateway

import (
	"bufio"
	"io"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/railmod/cbusgw/internal/cbus"
)

// Sink receives frames the gateway routes off the TCP side, typically a
// SocketCAN bus or the command-station uplink.
type Sink interface {
	Send(cbus.Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(cbus.Frame) error

func (f SinkFunc) Send(fr cbus.Frame) error { return f(fr) }

// Server accepts GridConnect TCP connections, decodes inbound frames
// and forwards DCC-kind traffic to the sink. Frames arriving from the
// bus side are fanned out to every connected client via Broadcast.
type Server struct {
	ln   net.Listener
	sink Sink
	log  zerolog.Logger

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

func NewServer(addr string, sink Sink, logger zerolog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &Server{
		ln:    ln,
		sink:  sink,
		log:   logger,
		conns: make(map[net.Conn]struct{}),
	}
	s.wg.Add(1)
	go s.acceptLoop()
	return s, nil
}

func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Close stops the listener, drops every client and waits for the
// connection goroutines to finish.
func (s *Server) Close() error {
	err := s.ln.Close()
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	return err
}

// Broadcast writes one frame to every connected client.
func (s *Server) Broadcast(f cbus.Frame) {
	line := f.EncodeASCII()
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if _, err := io.WriteString(conn, line); err != nil {
			s.log.Warn().Err(err).Stringer("peer", conn.RemoteAddr()).Msg("broadcast write failed")
		}
	}
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
		s.wg.Add(1)
		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer s.wg.Done()
	log := s.log.With().Stringer("peer", conn.RemoteAddr()).Logger()
	log.Info().Msg("connected")
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
		log.Info().Msg("disconnected")
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Split(ScanFrames)
	for scanner.Scan() {
		line := scanner.Text()
		f, err := cbus.DecodeASCII(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("bad frame")
			continue
		}
		log.Debug().Stringer("frame", f).Msg("in")

		op, ok := f.OpCode()
		if !ok || s.sink == nil {
			continue
		}
		if e, ok := cbus.Lookup(op); ok && e.Kind == cbus.KindDCC {
			if err := s.sink.Send(f); err != nil {
				log.Error().Err(err).Stringer("frame", f).Msg("sink send failed")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Msg("read failed")
	}
}
