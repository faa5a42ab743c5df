package modulino

// Factory-default 7-bit addresses of the Modulino boards. Some boards can be
// moved to an alternate address with a solder jumper, hence the pairs.
const (
	ButtonsAddress    = 0x3E
	BuzzerAddress     = 0x1E
	PixelsAddress     = 0x36
	DistanceAddress   = 0x29
	ThermoAddress     = 0x44
	JoystickAddress   = 0x2C
	LatchRelayAddress = 0x02
	VibroAddress      = 0x38
)

var MovementAddresses = [2]byte{0x6A, 0x6B}
var KnobAddresses = [2]byte{0x3A, 0x3B}

// Pinstrap bytes identify the board type. Boards driven by a microcontroller
// (buttons, knob, joystick, relay...) prepend this byte to every read
// response; it is not part of the payload proper.
const (
	ButtonsPinstrap    = 0x7C
	BuzzerPinstrap     = 0x3C
	PixelsPinstrap     = 0x6C
	JoystickPinstrap   = 0x58
	LatchRelayPinstrap = 0x04
	VibroPinstrap      = 0x70
)

var KnobPinstraps = [2]byte{0x74, 0x76}
