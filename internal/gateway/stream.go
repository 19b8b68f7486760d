package gateway

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/railmod/cbusgw/internal/cbus"
)

// ScanFrames is a bufio.SplitFunc that extracts GridConnect frames from
// a byte stream. Bytes outside a ':'...';' run are discarded; TCP
// bridges interleave frames with no separator, so the stream is framed
// only by the markers themselves.
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := bytes.IndexByte(data, ':')
	if start < 0 {
		return len(data), nil, nil
	}
	end := bytes.IndexByte(data[start:], ';')
	if end < 0 {
		if atEOF {
			return len(data), nil, nil
		}
		// drop leading garbage, wait for the terminator
		return start, nil, nil
	}
	return start + end + 1, data[start : start+end+1], nil
}

// ParseStream decodes every GridConnect frame in a buffer. Decode
// failures do not stop the scan; they are aggregated and returned
// alongside the frames that did decode.
func ParseStream(data []byte) ([]cbus.Frame, error) {
	var frames []cbus.Frame
	var errs *multierror.Error
	rest := data
	for {
		start := bytes.IndexByte(rest, ':')
		if start < 0 {
			break
		}
		end := bytes.IndexByte(rest[start:], ';')
		if end < 0 {
			break
		}
		line := string(rest[start : start+end+1])
		rest = rest[start+end+1:]

		f, err := cbus.DecodeASCII(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", line, err))
			continue
		}
		frames = append(frames, f)
	}
	return frames, errs.ErrorOrNil()
}
