package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gomonome/inputmodule"
)

var sigchan = make(chan os.Signal, 10)

// wave lets a bright band run across all matrices, from left to right.
func wave(row *inputmodule.Row, step int) error {
	width := row.Bounds().Dx()
	for x := 0; x < width; x++ {
		dist := (x - step%width + width) % width
		var b uint8
		if dist < 8 {
			b = uint8(255 - dist*32)
		}
		for y := 0; y < inputmodule.Height; y++ {
			row.Set(x, y, b)
		}
	}
	return row.Flush()
}

func main() {
	conns, err := inputmodule.Connections([]inputmodule.Kind{inputmodule.KindLEDMatrix})

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	}

	if len(conns) < 1 {
		fmt.Fprintln(os.Stderr, "no LED matrix found")
		os.Exit(1)
	}

	var matrices []*inputmodule.LEDMatrix
	for _, c := range conns {
		matrices = append(matrices, inputmodule.NewLEDMatrix(c))
	}
	row := inputmodule.NewRow("example", matrices...)

	// listen for ctrl+c
	signal.Notify(sigchan, os.Interrupt)

	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()

loop:
	for step := 0; ; step++ {
		select {
		case <-sigchan:
			break loop
		case <-t.C:
			if err := wave(row, step); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				break loop
			}
		}
	}

	fmt.Fprint(os.Stdout, "\ninterrupted, cleaning up...")
	row.Close()
	fmt.Fprintln(os.Stdout, "done")
}
