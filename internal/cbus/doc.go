// Package cbus implements the wire layer of the MERG CBUS protocol:
// the CAN arbitration header, the raw frame with its binary and
// GridConnect ASCII encodings, and the opcode registry that gives every
// operation code its name, category, payload length and priority hint.
//
// Ownership boundary:
// - header pack/unpack (priorities, CAN ID)
// - frame codecs (binary, GridConnect)
// - opcode metadata lookup
//
// Everything here is pure and allocation-light; the package performs no
// I/O and holds no mutable state after init, so all functions are safe
// to call concurrently. Typed views over frame payloads live in the
// message subpackage.
package cbus
