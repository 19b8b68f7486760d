// cbusdump decodes a GridConnect capture into readable CBUS messages.
// It reads stdin or the files named on the command line, one decoded
// message per line, and flags command-station / configuration errors.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/railmod/cbusgw/internal/cbus"
	"github.com/railmod/cbusgw/internal/cbus/message"
	"github.com/railmod/cbusgw/internal/gateway"
	"github.com/railmod/cbusgw/internal/logging"
)

func main() {
	flag.Parse()
	log := logging.ConfigureRuntime("cbusdump")

	if flag.NArg() == 0 {
		dump(os.Stdin, "stdin")
		return
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("open")
		}
		dump(f, name)
		f.Close()
	}
}

func dump(r io.Reader, name string) {
	scanner := bufio.NewScanner(r)
	scanner.Split(gateway.ScanFrames)
	for scanner.Scan() {
		line := scanner.Text()
		frame, err := cbus.DecodeASCII(line)
		if err != nil {
			fmt.Printf("%-24s !! %v\n", line, err)
			continue
		}
		if frame.RTR {
			fmt.Printf("%-24s %s\n", line, frame)
			continue
		}
		msg, err := message.FromFrame(frame)
		if err != nil {
			fmt.Printf("%-24s %s !! %v\n", line, frame, err)
			continue
		}
		fmt.Printf("%-24s %+v\n", line, msg)
		if err := message.Classify(msg); err != nil {
			fmt.Printf("%-24s    error report: %v\n", "", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
}
