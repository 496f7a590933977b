// Package platform provides the byte-level transport a VL53L5CX ranging
// engine drives, adapters binding it to common Go I2C stacks, and a probe
// for locating the sensor on a bus.
package platform

import (
	"fmt"
)

// Transport is the link an engine uses to reach the sensor. The VL53L5CX
// addresses registers with 16-bit indexes and loads its firmware with
// multi-kilobyte writes, so implementations must not split transfers.
type Transport interface {
	// ReadMulti reads len(buf) bytes starting at register reg
	ReadMulti(reg uint16, buf []byte) error

	// WriteMulti writes buf starting at register reg
	WriteMulti(reg uint16, buf []byte) error
}

// Register bank selection. Writing bankID exposes the identification
// registers at the bottom of the map, bankDefault restores normal
// operation.
const (
	RegBankSelect uint16 = 0x7FFF

	bankID      uint8 = 0x00
	bankDefault uint8 = 0x02
)

// Identification registers and the values a VL53L5CX reports in them
const (
	RegDeviceID   uint16 = 0x0000
	RegRevisionID uint16 = 0x0001

	DeviceID   uint8 = 0xF0
	RevisionID uint8 = 0x02
)

// Detect probes tr for a VL53L5CX by reading the silicon identity and
// reports whether one answered. The register bank is restored before a
// successful return, so Detect is safe to run against an already
// initialized sensor.
func Detect(tr Transport) (bool, error) {

	if err := tr.WriteMulti(RegBankSelect, []byte{bankID}); err != nil {
		return false, fmt.Errorf("bank select failed: %w", err)
	}

	// device id at 0x00, revision id at 0x01
	id := make([]byte, 2)

	if err := tr.ReadMulti(RegDeviceID, id); err != nil {
		return false, fmt.Errorf("identity read failed: %w", err)
	}

	if err := tr.WriteMulti(RegBankSelect, []byte{bankDefault}); err != nil {
		return false, fmt.Errorf("bank restore failed: %w", err)
	}

	return id[0] == DeviceID && id[1] == RevisionID, nil
}

// frame prepends the big-endian register index to payload, the wire form
// shared by every adapter in this package
func frame(reg uint16, payload []byte) []byte {

	out := make([]byte, 0, len(payload)+2)
	out = append(out, byte(reg>>8), byte(reg))

	return append(out, payload...)
}

var (
	_ Transport = (*GoI2C)(nil)
	_ Transport = (*Periph)(nil)
	_ Transport = (*TinyGo)(nil)
)
