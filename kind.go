package inputmodule

import (
	"fmt"
	"image"
)

// Kind is the type of an input module, identified by its USB product id.
type Kind uint16

const (
	KindUnknown   Kind = 0
	KindQTPy      Kind = 0x1F
	KindLEDMatrix Kind = 0x20
	KindB1Display Kind = 0x21
	KindC1Minimal Kind = 0x22
)

// Kinds lists all known module kinds.
var Kinds = []Kind{KindLEDMatrix, KindB1Display, KindC1Minimal, KindQTPy}

func (k Kind) String() string {
	switch k {
	case KindQTPy:
		return "qtpy"
	case KindLEDMatrix:
		return "ledmatrix"
	case KindB1Display:
		return "b1display"
	case KindC1Minimal:
		return "c1minimal"
	}
	return fmt.Sprintf("Kind(0x%04x)", uint16(k))
}

// ProductID returns the USB product id of the kind.
func (k Kind) ProductID() uint16 { return uint16(k) }

// Known reports whether k is one of Kinds.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Size returns the resolution of the display of the module.
// Modules with a single RGB LED report 1x1.
func (k Kind) Size() image.Point {
	switch k {
	case KindLEDMatrix:
		return image.Pt(Width, Height)
	case KindB1Display:
		return image.Pt(B1Width, B1Height)
	case KindC1Minimal, KindQTPy:
		return image.Pt(1, 1)
	}
	return image.Point{}
}

// ParseKind returns the kind with the given name, as returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, &UnrecognizedValueError{Kind: "module kind", Name: s}
}

// KindOf returns the kind for a USB vendor and product id.
func KindOf(vendor, product uint16) Kind {
	if vendor != VendorID {
		return KindUnknown
	}
	if k := Kind(product); k.Known() {
		return k
	}
	return KindUnknown
}
