package distance

import (
	"context"
	"fmt"
	"time"

	"github.com/mklimuk/modulino"
)

// VL53L4CD register map (16-bit register indexes, big endian on the wire)
const (
	regVHVTimeoutBound  uint16 = 0x0008
	regGPIOHVMuxCtrl    uint16 = 0x0030
	regGPIOTIOHVStatus  uint16 = 0x0031
	regRangeConfigA     uint16 = 0x005E
	regRangeConfigB     uint16 = 0x0061
	regInterMeasurement uint16 = 0x006C
	regInterruptClear   uint16 = 0x0086
	regSystemStart      uint16 = 0x0087
	regRangeStatus      uint16 = 0x0089
	regRangeMM          uint16 = 0x0096
	regFirmwareStatus   uint16 = 0x00E5
)

const (
	configBase      uint16 = 0x002D
	firmwareBooted  byte   = 0x03
	rangingStart    byte   = 0x40
	rangingStop     byte   = 0x00
	interruptClear  byte   = 0x01
	oscFrequency    uint32 = 64000
	pollAttempts           = 1000
	pollInterval           = time.Millisecond
)

// Delay blocks the calling goroutine for the given duration. The default is
// time.Sleep; tests inject a no-op to keep the bounded poll loops fast and
// deterministic.
type Delay func(time.Duration)

// Measurement is a single distance reading. RangeStatus is the raw 5-bit
// status code; no filtering is applied by the driver, validity is a caller
// policy (see Valid).
type Measurement struct {
	DistanceMM  uint16
	RangeStatus byte
}

// Valid reports whether the range status indicates a trustworthy reading
// (0 = ok, 4 = wrapped target ok). Callers that want every sample for debug
// visibility can ignore it and use the raw status instead.
func (m Measurement) Valid() bool {
	return m.RangeStatus == 0 || m.RangeStatus == 4
}

type VL53L4CDOpts struct {
	Address byte
	Delay   Delay
}

type VL53L4CDOpt func(*VL53L4CDOpts)

func WithAddress(address byte) VL53L4CDOpt {
	return func(o *VL53L4CDOpts) {
		o.Address = address
	}
}

func WithDelay(delay Delay) VL53L4CDOpt {
	return func(o *VL53L4CDOpts) {
		o.Delay = delay
	}
}

// VL53L4CD drives the Modulino Distance time-of-flight board.
// Typical usage:
//
//	s := distance.NewVL53L4CD(bus)
//	err := s.Init(ctx)
//	err = s.StartRanging(ctx)
//	for {
//		ready, err := s.DataReady(ctx)
//		if ready {
//			m, err := s.ReadDistance(ctx)
//			...
//		}
//	}
//
// All operations are synchronous and must be issued by a single owner.
type VL53L4CD struct {
	dev   *modulino.Device
	delay Delay
}

func NewVL53L4CD(transport modulino.I2CBus, opts ...VL53L4CDOpt) *VL53L4CD {
	config := VL53L4CDOpts{
		Address: modulino.DistanceAddress,
		Delay:   time.Sleep,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &VL53L4CD{
		dev:   modulino.NewDevice(transport, config.Address),
		delay: config.Delay,
	}
}

// Address returns the sensor's 7-bit bus address.
func (s *VL53L4CD) Address() byte {
	return s.dev.Address()
}

// Init brings the sensor from power-on to a configured idle state: it waits
// for the firmware to boot, uploads the factory configuration, runs one
// calibration ranging pulse and applies the default range timing (20 ms
// budget, 50 ms inter-measurement period).
//
// Both wait loops are bounded by attempt count and proceed past exhaustion
// instead of failing; a warm-started device may never report the boot
// sentinel again and refusing to continue would make it unrecoverable.
// Any configuration write failure aborts immediately: a partial upload
// leaves the device in an undefined state and must not be papered over.
func (s *VL53L4CD) Init(ctx context.Context) error {
	s.waitForBoot(ctx)
	for i, value := range defaultConfiguration {
		err := s.dev.WriteReg16U8(ctx, configBase+uint16(i), value)
		if err != nil {
			return fmt.Errorf("configuration upload failed at %#x: %w", configBase+uint16(i), err)
		}
	}
	// one ranging pulse to let the device run its VHV calibration
	err := s.StartRanging(ctx)
	if err != nil {
		return fmt.Errorf("calibration start failed: %w", err)
	}
	s.waitForData(ctx)
	err = s.dev.WriteReg16U8(ctx, regVHVTimeoutBound, 0x09)
	if err != nil {
		return fmt.Errorf("could not set VHV timeout bound: %w", err)
	}
	err = s.dev.WriteReg16U8(ctx, 0x000B, 0x00)
	if err != nil {
		return fmt.Errorf("could not write tuning register: %w", err)
	}
	err = s.dev.WriteReg16U16(ctx, 0x0024, 0x0500)
	if err != nil {
		return fmt.Errorf("could not write tuning value: %w", err)
	}
	err = s.ClearInterrupt(ctx)
	if err != nil {
		return fmt.Errorf("could not clear calibration interrupt: %w", err)
	}
	err = s.StopRanging(ctx)
	if err != nil {
		return fmt.Errorf("calibration stop failed: %w", err)
	}
	// 20/50 defaults instead of continuous mode; true continuous ranging
	// races the host on measurement data
	err = s.SetTimingBudget(ctx, 20)
	if err != nil {
		return err
	}
	return s.SetInterMeasurement(ctx, 50)
}

// waitForBoot polls the firmware status register until the boot sentinel
// shows up. Bounded and non-fatal on exhaustion.
func (s *VL53L4CD) waitForBoot(ctx context.Context) {
	for i := 0; i < pollAttempts; i++ {
		status, err := s.dev.ReadReg16U8(ctx, regFirmwareStatus)
		if err == nil && status == firmwareBooted {
			return
		}
		s.delay(pollInterval)
	}
}

// waitForData polls data-ready. Bounded and non-fatal on exhaustion.
func (s *VL53L4CD) waitForData(ctx context.Context) {
	for i := 0; i < pollAttempts; i++ {
		ready, err := s.DataReady(ctx)
		if err == nil && ready {
			return
		}
		s.delay(pollInterval)
	}
}

// SetTimingBudget sets the measurement integration time in milliseconds.
// Supported values are 10, 15, 20, 33, 50, 100, 200 and 500; anything else
// falls back to the 20 ms encoding. Takes effect on the next cycle.
func (s *VL53L4CD) SetTimingBudget(ctx context.Context, budgetMS uint16) error {
	value, ok := timingBudgets[budgetMS]
	if !ok {
		value = timingBudgets[20]
	}
	err := s.dev.WriteReg16U16(ctx, regRangeConfigA, value)
	if err != nil {
		return fmt.Errorf("could not set range config A: %w", err)
	}
	err = s.dev.WriteReg16U16(ctx, regRangeConfigB, value)
	if err != nil {
		return fmt.Errorf("could not set range config B: %w", err)
	}
	return nil
}

// SetInterMeasurement sets the spacing between the start of successive
// measurement cycles in milliseconds. Zero selects continuous ranging.
func (s *VL53L4CD) SetInterMeasurement(ctx context.Context, periodMS uint32) error {
	ticks := uint32(uint64(periodMS) * uint64(oscFrequency) / 1000)
	err := s.dev.WriteReg16U32(ctx, regInterMeasurement, ticks)
	if err != nil {
		return fmt.Errorf("could not set inter-measurement period: %w", err)
	}
	return nil
}

// StartRanging starts continuous measurement. Idempotent.
func (s *VL53L4CD) StartRanging(ctx context.Context) error {
	err := s.dev.WriteReg16U8(ctx, regSystemStart, rangingStart)
	if err != nil {
		return fmt.Errorf("could not start ranging: %w", err)
	}
	return nil
}

// StopRanging stops measurement. Idempotent.
func (s *VL53L4CD) StopRanging(ctx context.Context) error {
	err := s.dev.WriteReg16U8(ctx, regSystemStart, rangingStop)
	if err != nil {
		return fmt.Errorf("could not stop ranging: %w", err)
	}
	return nil
}

// DataReady reports whether a new measurement is available. The interrupt
// pin polarity is configurable, so the status bit is compared against the
// polarity read back from the mux control register rather than assumed.
func (s *VL53L4CD) DataReady(ctx context.Context) (bool, error) {
	mux, err := s.dev.ReadReg16U8(ctx, regGPIOHVMuxCtrl)
	if err != nil {
		return false, fmt.Errorf("could not read interrupt polarity: %w", err)
	}
	polarity := (mux & 0x10) >> 4
	status, err := s.dev.ReadReg16U8(ctx, regGPIOTIOHVStatus)
	if err != nil {
		return false, fmt.Errorf("could not read interrupt status: %w", err)
	}
	return status&0x01 != polarity, nil
}

// RangeStatus reads the raw 5-bit status code of the last measurement.
func (s *VL53L4CD) RangeStatus(ctx context.Context) (byte, error) {
	status, err := s.dev.ReadReg16U8(ctx, regRangeStatus)
	if err != nil {
		return 0, fmt.Errorf("could not read range status: %w", err)
	}
	return status & 0x1F, nil
}

// ClearInterrupt re-arms the measurement interrupt. Must follow every read,
// otherwise the sensor will not produce a new measurement.
func (s *VL53L4CD) ClearInterrupt(ctx context.Context) error {
	err := s.dev.WriteReg16U8(ctx, regInterruptClear, interruptClear)
	if err != nil {
		return fmt.Errorf("could not clear interrupt: %w", err)
	}
	return nil
}

// ReadDistance reads the current measurement and clears the interrupt. The
// returned measurement is raw; check Valid (or RangeStatus) to filter.
func (s *VL53L4CD) ReadDistance(ctx context.Context) (Measurement, error) {
	status, err := s.RangeStatus(ctx)
	if err != nil {
		return Measurement{}, err
	}
	mm, err := s.dev.ReadReg16U16(ctx, regRangeMM)
	if err != nil {
		return Measurement{}, fmt.Errorf("could not read distance: %w", err)
	}
	err = s.ClearInterrupt(ctx)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{DistanceMM: mm, RangeStatus: status}, nil
}

// ReadBlocking waits for data-ready and returns the measurement. Unlike the
// init-time loops the exhaustion of the attempt bound is an error here:
// steady-state polling that never sees data means ranging is not running.
func (s *VL53L4CD) ReadBlocking(ctx context.Context) (Measurement, error) {
	for i := 0; i < pollAttempts; i++ {
		ready, err := s.DataReady(ctx)
		if err != nil {
			return Measurement{}, err
		}
		if ready {
			return s.ReadDistance(ctx)
		}
		s.delay(pollInterval)
	}
	return Measurement{}, fmt.Errorf("no measurement within %d polls: %w", pollAttempts, modulino.ErrTimeout)
}

// Release detaches and returns the underlying transport.
func (s *VL53L4CD) Release(ctx context.Context) (modulino.I2CBus, error) {
	return s.dev.Release(ctx)
}
