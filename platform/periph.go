package platform

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Periph adapts a periph.io connection, typically an i2c.Dev bound to the
// sensor's address, to the Transport interface
type Periph struct {
	conn conn.Conn
}

// NewPeriph returns a Transport over the given periph.io connection
func NewPeriph(c conn.Conn) *Periph {
	return &Periph{conn: c}
}

// ReadMulti reads len(buf) bytes starting at register reg
func (p *Periph) ReadMulti(reg uint16, buf []byte) error {
	return p.conn.Tx([]byte{byte(reg >> 8), byte(reg)}, buf)
}

// WriteMulti writes buf starting at register reg
func (p *Periph) WriteMulti(reg uint16, buf []byte) error {
	return p.conn.Tx(frame(reg, buf), nil)
}

// PeriphResetPin drives the sensor's LPn line through a periph.io GPIO pin
type PeriphResetPin struct {
	pin gpio.PinIO
}

// NewPeriphResetPin returns a reset pin over the given GPIO pin
func NewPeriphResetPin(pin gpio.PinIO) *PeriphResetPin {
	return &PeriphResetPin{pin: pin}
}

// Set drives the pin high or low
func (p *PeriphResetPin) Set(high bool) error {

	l := gpio.Low

	if high {
		l = gpio.High
	}

	return p.pin.Out(l)
}
