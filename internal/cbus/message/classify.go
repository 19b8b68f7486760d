package message

import "github.com/railmod/cbusgw/internal/cbus/cserr"

// Classify maps a decoded failure response onto the cserr taxonomy.
// Messages that are not ERR or CMDERR classify to nil; the caller
// decides what a nil classification means for its request.
func Classify(m Message) error {
	switch r := m.(type) {
	case CommandStationError:
		return cserr.FromCommandStation(r.Address, r.Code)
	case ConfigurationError:
		return cserr.FromConfig(r.NodeNumber, r.Code)
	}
	return nil
}
