package motion

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/mklimuk/modulino"
)

// LSM6DSOX register map (subset).
const (
	regWhoAmI   = 0x0F
	regCtrl1XL  = 0x10
	regCtrl2G   = 0x11
	regCtrl3C   = 0x12
	regStatus   = 0x1E
	regOutXLG   = 0x22
	regOutXLXL  = 0x28
	chipID      = 0x6C
	ctrlSWReset = 0x01
	// 104 Hz output data rate, lowest full-scale range
	ctrlODR104 = 0x40
	// block data update with register address auto-increment
	ctrlBDUIncr = 0x44
)

// accelerometer sensitivity at +/-2g, in mg/LSB
const accelSensitivity = 0.061

// gyroscope sensitivity at +/-250dps, in mdps/LSB
const gyroSensitivity = 8.75

// Acceleration is an accelerometer sample in g per axis.
type Acceleration struct {
	X, Y, Z float32
}

// AngularVelocity is a gyroscope sample in degrees per second per axis.
type AngularVelocity struct {
	X, Y, Z float32
}

// LSM6DSOX represents the ST 6-axis IMU on the Modulino Movement board. The
// device speaks plain 8-bit registers, no pinstrap byte.
type LSM6DSOX struct {
	dev *modulino.Device
}

type LSM6DSOXOpts struct {
	Address byte
}

type LSM6DSOXOpt func(*LSM6DSOXOpts)

func WithLSM6DSOXAddress(address byte) LSM6DSOXOpt {
	return func(o *LSM6DSOXOpts) {
		o.Address = address
	}
}

func NewLSM6DSOX(transport modulino.I2CBus, opts ...LSM6DSOXOpt) *LSM6DSOX {
	config := LSM6DSOXOpts{Address: modulino.MovementAddresses[0]}
	for _, opt := range opts {
		opt(&config)
	}
	return &LSM6DSOX{dev: modulino.NewDevice(transport, config.Address)}
}

func (m *LSM6DSOX) Address() byte {
	return m.dev.Address()
}

// Init verifies the chip identity, resets it and enables both the
// accelerometer and the gyroscope at 104 Hz.
func (m *LSM6DSOX) Init(ctx context.Context) error {
	id, err := m.dev.ReadReg8(ctx, regWhoAmI)
	if err != nil {
		return fmt.Errorf("lsm6dsox: identity read failed: %w", err)
	}
	if id != chipID {
		return fmt.Errorf("lsm6dsox: unexpected chip id 0x%02X: %w", id, modulino.ErrDeviceNotFound)
	}
	if err = m.dev.WriteReg8(ctx, regCtrl3C, ctrlSWReset); err != nil {
		return fmt.Errorf("lsm6dsox: reset failed: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err = m.dev.WriteReg8(ctx, regCtrl1XL, ctrlODR104); err != nil {
		return fmt.Errorf("lsm6dsox: accelerometer setup failed: %w", err)
	}
	if err = m.dev.WriteReg8(ctx, regCtrl2G, ctrlODR104); err != nil {
		return fmt.Errorf("lsm6dsox: gyroscope setup failed: %w", err)
	}
	if err = m.dev.WriteReg8(ctx, regCtrl3C, ctrlBDUIncr); err != nil {
		return fmt.Errorf("lsm6dsox: control setup failed: %w", err)
	}
	return nil
}

// DataReady reports whether both a fresh accelerometer and gyroscope sample
// are available.
func (m *LSM6DSOX) DataReady(ctx context.Context) (bool, error) {
	status, err := m.dev.ReadReg8(ctx, regStatus)
	if err != nil {
		return false, fmt.Errorf("lsm6dsox: status read failed: %w", err)
	}
	return status&0x03 == 0x03, nil
}

// Acceleration reads the current accelerometer sample.
func (m *LSM6DSOX) Acceleration(ctx context.Context) (Acceleration, error) {
	x, y, z, err := m.readAxes(ctx, regOutXLXL)
	if err != nil {
		return Acceleration{}, fmt.Errorf("lsm6dsox: accelerometer read failed: %w", err)
	}
	scale := float32(accelSensitivity) / 1000
	return Acceleration{
		X: float32(x) * scale,
		Y: float32(y) * scale,
		Z: float32(z) * scale,
	}, nil
}

// AngularVelocity reads the current gyroscope sample.
func (m *LSM6DSOX) AngularVelocity(ctx context.Context) (AngularVelocity, error) {
	x, y, z, err := m.readAxes(ctx, regOutXLG)
	if err != nil {
		return AngularVelocity{}, fmt.Errorf("lsm6dsox: gyroscope read failed: %w", err)
	}
	scale := float32(gyroSensitivity) / 1000
	return AngularVelocity{
		X: float32(x) * scale,
		Y: float32(y) * scale,
		Z: float32(z) * scale,
	}, nil
}

// readAxes reads six consecutive output registers as three little-endian
// signed words.
func (m *LSM6DSOX) readAxes(ctx context.Context, reg byte) (int16, int16, int16, error) {
	buf := make([]byte, 6)
	err := m.dev.ReadRegs8(ctx, reg, buf)
	if err != nil {
		return 0, 0, 0, err
	}
	x := int16(binary.LittleEndian.Uint16(buf[0:2]))
	y := int16(binary.LittleEndian.Uint16(buf[2:4]))
	z := int16(binary.LittleEndian.Uint16(buf[4:6]))
	return x, y, z, nil
}

func (m *LSM6DSOX) Release(ctx context.Context) (modulino.I2CBus, error) {
	return m.dev.Release(ctx)
}
