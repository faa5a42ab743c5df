package modulino

import (
	"context"
	"encoding/binary"
	"fmt"
)

// Device binds a bus transport to a single 7-bit address and provides
// register-oriented access on top of raw transactions. The address is fixed
// at construction time. Two register addressing conventions are supported:
// a plain 8-bit register index (simple sensors) and a 16-bit big-endian
// register index (the ranging sensor family). A driver must stick to the
// convention of its chip; the two are never mixed on one device.
//
// Every method performs exactly one bus transaction and does not retry;
// retry policy belongs to the calling driver.
type Device struct {
	transport I2CBus
	address   byte
}

func NewDevice(transport I2CBus, address byte) *Device {
	return &Device{transport: transport, address: address}
}

// Address returns the bound 7-bit address.
func (d *Device) Address() byte {
	return d.address
}

func (d *Device) Write(ctx context.Context, buffer []byte) error {
	return d.transport.WriteToAddr(ctx, d.address, buffer)
}

func (d *Device) Read(ctx context.Context, buffer []byte) error {
	return d.transport.ReadFromAddr(ctx, d.address, buffer)
}

// WriteRead issues a single repeated-start transaction: w is transmitted,
// then r is filled, without releasing the bus in between.
func (d *Device) WriteRead(ctx context.Context, w, r []byte) error {
	return d.transport.WriteReadFromAddr(ctx, d.address, w, r)
}

func (d *Device) WriteReg8(ctx context.Context, reg, value byte) error {
	err := d.Write(ctx, []byte{reg, value})
	if err != nil {
		return fmt.Errorf("could not write register %#x: %w", reg, err)
	}
	return nil
}

func (d *Device) ReadReg8(ctx context.Context, reg byte) (byte, error) {
	buf := make([]byte, 1)
	err := d.WriteRead(ctx, []byte{reg}, buf)
	if err != nil {
		return 0, fmt.Errorf("could not read register %#x: %w", reg, err)
	}
	return buf[0], nil
}

// ReadRegs8 reads len(buf) consecutive bytes starting at an 8-bit register.
func (d *Device) ReadRegs8(ctx context.Context, reg byte, buf []byte) error {
	err := d.WriteRead(ctx, []byte{reg}, buf)
	if err != nil {
		return fmt.Errorf("could not read registers from %#x: %w", reg, err)
	}
	return nil
}

func (d *Device) WriteReg16U8(ctx context.Context, reg uint16, value byte) error {
	err := d.Write(ctx, []byte{byte(reg >> 8), byte(reg), value})
	if err != nil {
		return fmt.Errorf("could not write register %#x: %w", reg, err)
	}
	return nil
}

func (d *Device) WriteReg16U16(ctx context.Context, reg, value uint16) error {
	out := make([]byte, 4)
	binary.BigEndian.PutUint16(out[0:2], reg)
	binary.BigEndian.PutUint16(out[2:4], value)
	err := d.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("could not write register %#x: %w", reg, err)
	}
	return nil
}

func (d *Device) WriteReg16U32(ctx context.Context, reg uint16, value uint32) error {
	out := make([]byte, 6)
	binary.BigEndian.PutUint16(out[0:2], reg)
	binary.BigEndian.PutUint32(out[2:6], value)
	err := d.Write(ctx, out)
	if err != nil {
		return fmt.Errorf("could not write register %#x: %w", reg, err)
	}
	return nil
}

func (d *Device) ReadReg16U8(ctx context.Context, reg uint16) (byte, error) {
	buf := make([]byte, 1)
	err := d.WriteRead(ctx, []byte{byte(reg >> 8), byte(reg)}, buf)
	if err != nil {
		return 0, fmt.Errorf("could not read register %#x: %w", reg, err)
	}
	return buf[0], nil
}

func (d *Device) ReadReg16U16(ctx context.Context, reg uint16) (uint16, error) {
	buf := make([]byte, 2)
	err := d.WriteRead(ctx, []byte{byte(reg >> 8), byte(reg)}, buf)
	if err != nil {
		return 0, fmt.Errorf("could not read register %#x: %w", reg, err)
	}
	return binary.BigEndian.Uint16(buf), nil
}

// Release detaches the transport from the device and returns it to the
// caller. The device must not be used afterwards.
func (d *Device) Release(ctx context.Context) (I2CBus, error) {
	transport := d.transport
	d.transport = nil
	if transport == nil {
		return nil, fmt.Errorf("device already released")
	}
	return transport, transport.Release(ctx)
}
