//go:build linux

package inputmodule

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var sysClassTTY = "/sys/class/tty"

// SerialPorts returns the serial ports of all attached input modules.
func SerialPorts() ([]PortInfo, error) {
	matches, err := filepath.Glob(filepath.Join(sysClassTTY, "ttyACM*"))
	if err != nil {
		return nil, err
	}

	var ports []PortInfo
	for _, tty := range matches {
		// device points to the USB interface, its parent is the USB device
		iface, err := filepath.EvalSymlinks(filepath.Join(tty, "device"))
		if err != nil {
			continue
		}
		usbDev := filepath.Dir(iface)
		vendor, ok := readHex(filepath.Join(usbDev, "idVendor"))
		if !ok {
			continue
		}
		product, ok := readHex(filepath.Join(usbDev, "idProduct"))
		if !ok {
			continue
		}
		kind := KindOf(vendor, product)
		if kind == KindUnknown {
			continue
		}
		ports = append(ports, PortInfo{
			Device:  filepath.Join("/dev", filepath.Base(tty)),
			Kind:    kind,
			Serial:  readLine(filepath.Join(usbDev, "serial")),
			Product: readLine(filepath.Join(usbDev, "product")),
		})
	}
	sort.Slice(ports, func(a, b int) bool { return ports[a].Device < ports[b].Device })
	return ports, nil
}

func readLine(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func readHex(path string) (uint16, bool) {
	v, err := strconv.ParseUint(readLine(path), 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
