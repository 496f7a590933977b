package platform

import (
	"tinygo.org/x/drivers"
)

// TinyGo adapts a TinyGo machine I2C bus to the Transport interface
type TinyGo struct {
	bus  drivers.I2C
	addr uint16
}

// NewTinyGo returns a Transport over the given TinyGo I2C bus and sensor
// address. The bus must already be configured.
func NewTinyGo(bus drivers.I2C, addr uint16) *TinyGo {
	return &TinyGo{bus: bus, addr: addr}
}

// ReadMulti reads len(buf) bytes starting at register reg
func (t *TinyGo) ReadMulti(reg uint16, buf []byte) error {
	return t.bus.Tx(t.addr, []byte{byte(reg >> 8), byte(reg)}, buf)
}

// WriteMulti writes buf starting at register reg
func (t *TinyGo) WriteMulti(reg uint16, buf []byte) error {
	return t.bus.Tx(t.addr, frame(reg, buf), nil)
}
