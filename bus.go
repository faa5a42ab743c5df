package modulino

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type BusReader interface {
	Read(ctx context.Context, buffer []byte) error
}

type BusWriter interface {
	Write(ctx context.Context, buffer []byte) error
}

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// AddressableTransceiver performs a write immediately followed by a read
// without releasing the bus in between (repeated start). Register reads go
// through this path so the device cannot be re-addressed between the
// addressing phase and the data phase.
type AddressableTransceiver interface {
	WriteReadFromAddr(ctx context.Context, address byte, w, r []byte) error
}

type I2CBus interface {
	AddressableReader
	AddressableWriter
	AddressableTransceiver
}

type I2CDevice interface {
	BusReader
	BusWriter
}
