// cbusgw bridges a CBUS segment onto TCP. Clients speak GridConnect
// lines; the bus side is a Linux SocketCAN interface when one is
// configured, otherwise the gateway runs as a pure TCP hub.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/railmod/cbusgw/internal/config"
	"github.com/railmod/cbusgw/internal/gateway"
	"github.com/railmod/cbusgw/internal/logging"
	"github.com/railmod/cbusgw/internal/transport/socketcan"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to TOML config (optional)")
	flag.Parse()

	log := logging.ConfigureRuntime("cbusgw")

	cfg, err := config.LoadGateway(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log.Info().Str("name", cfg.Name).Str("listen", cfg.Listen).
		Str("can_interface", cfg.CANInterface).Msg("starting")

	var sink gateway.Sink
	var bus *socketcan.Bus
	if cfg.CANInterface != "" {
		bus, err = socketcan.Open(cfg.CANInterface)
		if err != nil {
			log.Fatal().Err(err).Str("interface", cfg.CANInterface).Msg("socketcan open")
		}
		defer bus.Close()
		sink = bus
	}

	srv, err := gateway.NewServer(cfg.Listen, sink, log)
	if err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	defer srv.Close()
	log.Info().Stringer("addr", srv.Addr()).Msg("listening")

	if bus != nil {
		go func() {
			for f := range bus.Recv() {
				srv.Broadcast(f)
			}
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Str("signal", s.String()).Msg("shutting down")
}
