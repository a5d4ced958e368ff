//go:build !linux

package inputmodule

// SerialPorts is only implemented on Linux. Elsewhere the port has to be
// passed explicitly.
func SerialPorts() ([]PortInfo, error) {
	return nil, nil
}
