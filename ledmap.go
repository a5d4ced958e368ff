package inputmodule

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// LedAddress is the place of one LED of the matrix in the IS31FL3741A driver.
// X, Y, SW and CS start at 1.
type LedAddress struct {
	ID       int   `yaml:"id"`
	X        int   `yaml:"x"`
	Y        int   `yaml:"y"`
	SW       int   `yaml:"sw"`
	CS       int   `yaml:"cs"`
	Register uint8 `yaml:"register"`
	Page     uint8 `yaml:"page"`
}

// LedRegister returns the PWM register and the register page of the LED
// at switch line sw (1-9) and current sink cs (1-34).
func LedRegister(sw, cs int) (register, page uint8) {
	switch {
	case cs >= 31:
		return uint8(0x5A + cs - 31 + (sw-1)*9), 1
	case sw >= 7:
		return uint8(cs - 1 + (sw-7)*30), 1
	default:
		return uint8(cs - 1 + (sw-1)*30), 0
	}
}

// ledZone is a band of current sinks that is wired in the same order.
type ledZone struct {
	firstCS, lastCS int
	id              func(sw, local int) int
}

// the PCB routes the first and last band down then right, the others right then down
var ledZones = []ledZone{
	{1, 4, func(sw, local int) int { return Width*(local-1) + sw }},
	{5, 8, func(sw, local int) int { return Width*4 + 4*(sw-1) + local }},
	{9, 16, func(sw, local int) int { return Width*8 + 8*(sw-1) + local }},
	{17, 32, func(sw, local int) int { return Width*16 + 16*(sw-1) + local }},
	{33, 34, func(sw, local int) int { return Width*32 + Width*(local-1) + sw }},
}

// LedTable returns the address of every LED, sorted by y and then x.
func LedTable() []LedAddress {
	leds := make([]LedAddress, 0, NumLEDs)
	for _, z := range ledZones {
		for cs := z.firstCS; cs <= z.lastCS; cs++ {
			for sw := 1; sw <= Width; sw++ {
				reg, page := LedRegister(sw, cs)
				leds = append(leds, LedAddress{
					ID:       z.id(sw, cs-z.firstCS+1),
					X:        sw,
					Y:        cs,
					SW:       sw,
					CS:       cs,
					Register: reg,
					Page:     page,
				})
			}
		}
	}
	sort.SliceStable(leds, func(a, b int) bool {
		if leds[a].Y != leds[b].Y {
			return leds[a].Y < leds[b].Y
		}
		return leds[a].X < leds[b].X
	})
	return leds
}

// LedTableFormat selects the output of WriteLedTable.
type LedTableFormat string

const (
	// LedTableRust writes one tuple per line, ready to be pasted into the firmware.
	LedTableRust LedTableFormat = "rust"
	LedTableYAML LedTableFormat = "yaml"
)

// WriteLedTable writes the LED table to w.
func WriteLedTable(w io.Writer, format LedTableFormat) error {
	leds := LedTable()
	switch format {
	case LedTableRust:
		for _, l := range leds {
			_, err := fmt.Fprintf(w, "(0x%02x, %d), // x:%d, y:%d, sw:%d, cs:%d, id:%d\n",
				l.Register, l.Page, l.X, l.Y, l.SW, l.CS, l.ID)
			if err != nil {
				return err
			}
		}
		return nil
	case LedTableYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(leds); err != nil {
			return err
		}
		return enc.Close()
	}
	return &UnrecognizedValueError{Kind: "led table format", Name: string(format)}
}
