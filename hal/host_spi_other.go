//go:build !linux && !tinygo

package hal

type spiTransport struct{}

func openSPI(SPIConfig, Delay) (*spiTransport, error) { return nil, ErrNotImplemented }

func (*spiTransport) String() string           { return "" }
func (*spiTransport) Close() error             { return nil }
func (*spiTransport) SendCommand([]byte) error { return ErrNotImplemented }
func (*spiTransport) SendData([]byte) error    { return ErrNotImplemented }
