package platform

import (
	"fmt"

	"github.com/swdee/go-i2c"
)

// goI2CBus is the slice of the go-i2c connection used by the adapter
type goI2CBus interface {
	WriteBytes(buf []byte) (int, error)
	ReadBytes(buf []byte) (int, error)
}

// GoI2C adapts a go-i2c connection to the Transport interface. The
// connection must already be opened against the sensor's bus address.
type GoI2C struct {
	bus goI2CBus
}

// NewGoI2C returns a Transport over the given go-i2c connection
func NewGoI2C(bus *i2c.Options) *GoI2C {
	return &GoI2C{bus: bus}
}

// ReadMulti reads len(buf) bytes starting at register reg
func (g *GoI2C) ReadMulti(reg uint16, buf []byte) error {

	// Write the register address
	addr := []byte{byte(reg >> 8), byte(reg)}

	if _, err := g.bus.WriteBytes(addr); err != nil {
		return err
	}

	n, err := g.bus.ReadBytes(buf)

	if err != nil {
		return err
	}

	if n < len(buf) {
		return fmt.Errorf("short read, got %d of %d bytes", n, len(buf))
	}

	return nil
}

// WriteMulti writes buf starting at register reg
func (g *GoI2C) WriteMulti(reg uint16, buf []byte) error {

	out := frame(reg, buf)

	n, err := g.bus.WriteBytes(out)

	if err != nil {
		return err
	}

	if n < len(out) {
		return fmt.Errorf("short write, wrote %d of %d bytes", n, len(out))
	}

	return nil
}
