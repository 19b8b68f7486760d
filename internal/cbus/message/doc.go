// Package message projects raw CBUS frames into typed message values,
// one variant per message family, and classifies command-station
// failure responses into the cserr taxonomy.
//
// Ownership boundary:
// - FromFrame/ToFrame between cbus.Frame and the closed Message set
// - payload shape and field-range validation
// - ERR/CMDERR classification (Classify)
//
// The variant set is closed: Message has an unexported method, so only
// this package can add variants and a type switch over them can be
// checked for exhaustiveness. Messages are immutable values with no
// reference back to the frame they came from.
package message
