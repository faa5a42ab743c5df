package distance

// defaultConfiguration holds the factory tuning parameters of the VL53L4CD.
// It is written verbatim during Init, one byte per ascending register
// starting at configBase (0x2D). Values past the user-visible ones (interrupt
// polarity at 0x30, interrupt configuration at 0x46, sigma/count-rate
// thresholds at 0x64..0x67) are not user-modifiable.
var defaultConfiguration = [91]byte{
	0x12, // 0x2d
	0x00, // 0x2e
	0x00, // 0x2f
	0x11, // 0x30 bit 4: interrupt polarity, bits 3:0 must be 0x1
	0x02, // 0x31
	0x00, // 0x32
	0x02, // 0x33
	0x08, // 0x34
	0x00, // 0x35
	0x08, // 0x36
	0x10, // 0x37
	0x01, // 0x38
	0x01, // 0x39
	0x00, // 0x3a
	0x00, // 0x3b
	0x00, // 0x3c
	0x00, // 0x3d
	0xFF, // 0x3e
	0x00, // 0x3f
	0x0F, // 0x40
	0x00, // 0x41
	0x00, // 0x42
	0x00, // 0x43
	0x00, // 0x44
	0x00, // 0x45
	0x20, // 0x46 interrupt configuration: new sample ready
	0x0B, // 0x47
	0x00, // 0x48
	0x00, // 0x49
	0x02, // 0x4a
	0x14, // 0x4b
	0x21, // 0x4c
	0x00, // 0x4d
	0x00, // 0x4e
	0x05, // 0x4f
	0x00, // 0x50
	0x00, // 0x51
	0x00, // 0x52
	0x00, // 0x53
	0xC8, // 0x54
	0x00, // 0x55
	0x00, // 0x56
	0x38, // 0x57
	0xFF, // 0x58
	0x01, // 0x59
	0x00, // 0x5a
	0x08, // 0x5b
	0x00, // 0x5c
	0x00, // 0x5d
	0x01, // 0x5e
	0xCC, // 0x5f
	0x07, // 0x60
	0x01, // 0x61
	0xF1, // 0x62
	0x05, // 0x63
	0x00, // 0x64 sigma threshold MSB (14.2 format)
	0xA0, // 0x65 sigma threshold LSB
	0x00, // 0x66 min count rate MSB (9.7 format)
	0x80, // 0x67 min count rate LSB
	0x08, // 0x68
	0x38, // 0x69
	0x00, // 0x6a
	0x00, // 0x6b
	0x00, // 0x6c inter-measurement period (32 bits)
	0x00, // 0x6d
	0x0F, // 0x6e
	0x89, // 0x6f
	0x00, // 0x70
	0x00, // 0x71
	0x00, // 0x72 distance threshold high
	0x00, // 0x73
	0x00, // 0x74 distance threshold low
	0x00, // 0x75
	0x00, // 0x76
	0x01, // 0x77
	0x07, // 0x78
	0x05, // 0x79
	0x06, // 0x7a
	0x06, // 0x7b
	0x00, // 0x7c
	0x00, // 0x7d
	0x02, // 0x7e
	0xC7, // 0x7f
	0xFF, // 0x80
	0x9B, // 0x81
	0x00, // 0x82
	0x00, // 0x83
	0x00, // 0x84
	0x01, // 0x85
	0x00, // 0x86 interrupt clear
	0x00, // 0x87 ranging: 0x00 stop, 0x40 start
}

// timingBudgets maps a measurement integration time in milliseconds to the
// register value written to both range-config registers. The pairs come from
// the device's macro-period tables; values in between are not supported by
// the chip.
var timingBudgets = map[uint16]uint16{
	10:  0x0001,
	15:  0x0002,
	20:  0x0005,
	33:  0x000B,
	50:  0x0013,
	100: 0x0029,
	200: 0x0055,
	500: 0x00D6,
}
