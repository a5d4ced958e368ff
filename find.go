package inputmodule

import (
	"fmt"

	"github.com/karalabe/gousb/usb"
	"github.com/karalabe/gousb/usbid"
)

// PortInfo describes the serial port of an attached module.
type PortInfo struct {
	Device  string
	Kind    Kind
	Serial  string
	Product string
}

func (p PortInfo) String() string {
	return fmt.Sprintf("%s (%s, serial %s)", p.Device, p.Kind, p.Serial)
}

// USBDevice is a module as seen on the USB bus.
type USBDevice struct {
	Bus         uint8
	Address     uint8
	Kind        Kind
	Description string
}

func (d USBDevice) String() string {
	return fmt.Sprintf("bus %03d device %03d: %s [%04x:%04x] %s", d.Bus, d.Address, d.Kind, VendorID, d.Kind.ProductID(), d.Description)
}

// USBDevices lists all input modules on the USB bus. It needs access to
// libusb but not to the serial ports.
func USBDevices() ([]USBDevice, error) {
	ctx, err := usb.NewContext()
	if err != nil {
		return nil, USBContextError(err.Error())
	}
	defer ctx.Close()

	var found []USBDevice
	devs, err := ctx.ListDevices(func(desc *usb.Descriptor) bool {
		k := KindOf(uint16(desc.Vendor), uint16(desc.Product))
		if k == KindUnknown {
			return false
		}
		found = append(found, USBDevice{
			Bus:         desc.Bus,
			Address:     desc.Address,
			Kind:        k,
			Description: usbid.Describe(desc),
		})
		// only the descriptor is needed, do not open the device
		return false
	})
	for _, dev := range devs {
		dev.Close()
	}
	if err != nil {
		return found, USBContextError(err.Error())
	}
	return found, nil
}

// Connect opens the serial port of an attached module.
func Connect(p PortInfo, options ...Option) (*Conn, error) {
	opts := append([]Option{WithKind(p.Kind)}, options...)
	return Open(p.Device, opts...)
}

// Connections opens all attached modules of the given kinds, or of all
// kinds if none is given. Modules that could not be opened are reported in
// the returned *Errors, the others are still returned.
func Connections(kinds []Kind, options ...Option) ([]*Conn, error) {
	ports, err := SerialPorts()
	if err != nil {
		return nil, err
	}

	var conns []*Conn
	errs := Errors{Task: "connect to input modules"}

	for _, p := range ports {
		if !kindIn(p.Kind, kinds) {
			continue
		}
		c, err := Connect(p, options...)
		if err != nil {
			errs.Add(err)
			continue
		}
		conns = append(conns, c)
	}
	return conns, errs.Err()
}

func kindIn(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
