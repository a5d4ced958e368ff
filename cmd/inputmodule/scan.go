package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gomonome/inputmodule"
	"go.uber.org/zap"
)

// scan keeps looking for LED matrices. Every new one says hi and
// then shows the clock until it is unplugged.
func scan(ctx context.Context) error {
	var (
		devices      = map[string]context.CancelFunc{}
		addDevice    = make(chan inputmodule.PortInfo, 4)
		removeDevice = make(chan string, 4)
		wg           sync.WaitGroup
	)

	go scanForDevices(ctx, addDevice)

	for {
		select {
		case p := <-addDevice:
			if _, has := devices[p.Device]; has {
				continue
			}
			c, err := inputmodule.Connect(p, inputmodule.WithLogger(log))
			if err != nil {
				log.Warn("could not connect", zap.Stringer("port", p), zap.Error(err))
				continue
			}
			devCtx, cancel := context.WithCancel(ctx)
			devices[p.Device] = cancel
			fmt.Printf("attached: %s\n", p)
			wg.Add(1)
			go func() {
				defer wg.Done()
				runDevice(devCtx, inputmodule.NewLEDMatrix(c))
				c.Close()
				select {
				case removeDevice <- p.Device:
				case <-ctx.Done():
				}
			}()
		case dev := <-removeDevice:
			if cancel, has := devices[dev]; has {
				cancel()
				delete(devices, dev)
				fmt.Printf("detached: %s\n", dev)
			}
		case <-ctx.Done():
			fmt.Print("\ninterrupted, cleaning up...")
			for dev, cancel := range devices {
				cancel()
				delete(devices, dev)
			}
			wg.Wait()
			fmt.Println("done")
			return nil
		}
	}
}

func scanForDevices(ctx context.Context, found chan<- inputmodule.PortInfo) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			ports, err := inputmodule.SerialPorts()
			if err != nil {
				log.Warn("scanning failed", zap.Error(err))
				continue
			}
			for _, p := range ports {
				if p.Kind != inputmodule.KindLEDMatrix {
					continue
				}
				select {
				case found <- p:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func runDevice(ctx context.Context, m *inputmodule.LEDMatrix) {
	if err := inputmodule.Marquee(ctx, m, "HI", 60*time.Millisecond); err != nil {
		log.Warn("greeting failed", zap.Stringer("device", m), zap.Error(err))
		return
	}
	if m.IsClosed() {
		return
	}
	sleepOrDone(ctx, 200*time.Millisecond)
	if err := inputmodule.Clock(ctx, m, nil); err != nil {
		log.Warn("clock failed", zap.Stringer("device", m), zap.Error(err))
	}
}
