package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gomonome/inputmodule"
	"github.com/gomonome/inputmodule/internal/logging"
	"github.com/metakeule/config"
	"go.uber.org/zap"
)

var (
	cfg = config.MustNew("inputmodule", "0.1.0", "control the Framework Laptop 16 input modules")

	argSerialDev = cfg.NewString("serialdev", "serial port of the module, found automatically if not set")
	argDryRun    = cfg.NewBool("dryrun", "print the frames instead of sending them", config.Default(false))
	argLogLevel  = cfg.NewString("loglevel", "debug, info, warn or error", config.Default("warn"))
	argLogFile   = cfg.NewString("logfile", "also log into this file, rotated")

	listCmd = cfg.MustCommand("list", "list the attached input modules")

	firmwareCmd = cfg.MustCommand("firmware", "print the firmware version")

	brightnessCmd = cfg.MustCommand("brightness", "set or get the brightness")
	argBrightness = brightnessCmd.NewInt32("value", "brightness 0-255, query if not set")

	patternCmd = cfg.MustCommand("pattern", "show a pattern")
	argPattern = patternCmd.NewString("name", "gradient, double-gradient, lotus, zigzag, full, panic, lotus2, checkerboard1-4, rows2-6, cols2-5 or all-brightnesses")

	percentageCmd = cfg.MustCommand("percentage", "fill a percentage of the matrix")
	argPercentage = percentageCmd.NewInt32("value", "percentage 0-100")

	sleepCmd = cfg.MustCommand("sleep", "set or get the sleep state")
	argSleep = sleepCmd.NewString("state", "on or off, query if not set")

	animateCmd = cfg.MustCommand("animate", "set or get vertical scrolling")
	argAnimate = animateCmd.NewString("state", "on or off, query if not set")

	pwmCmd = cfg.MustCommand("pwm", "set or get the PWM frequency")
	argPwm = pwmCmd.NewInt32("freq", "29000, 3600, 1800 or 900, query if not set")

	imageCmd     = cfg.MustCommand("image", "show a PNG or GIF image, scaled to fit")
	argImageFile = imageCmd.NewString("file", "image file")
	argImageGrey = imageCmd.NewBool("grey", "show in greyscale instead of black and white", config.Default(false))

	stringCmd  = cfg.MustCommand("string", "show up to five characters")
	argStrText = stringCmd.NewString("text", "the characters")

	symbolsCmd = cfg.MustCommand("symbols", "show up to five symbols, comma separated")
	argSymbols = symbolsCmd.NewString("items", "symbol names or characters, e.g. sun,:),5")

	eqCmd    = cfg.MustCommand("eq", "show an equalizer")
	argEqVal = eqCmd.NewString("values", "nine comma separated values 0-34")

	ledsCmd  = cfg.MustCommand("leds", "light the first leds")
	argLeds  = ledsCmd.NewInt32("count", "number of LEDs 0-306")
	gameCmd  = cfg.MustCommand("game", "start a game")
	argGame  = gameCmd.NewString("name", "snake, pong, tetris or life")
	argStart = gameCmd.NewString("start", "start board of life: currentmatrix, pattern1, blinker, toad, beacon, glider, beacontoadblinker", config.Default("currentmatrix"))

	controlCmd = cfg.MustCommand("control", "send a key to the running game")
	argKey     = controlCmd.NewString("key", "up, down, left, right, quit, left2 or right2")

	bootloaderCmd = cfg.MustCommand("bootloader", "reboot into the bootloader")
	panicCmd      = cfg.MustCommand("panic", "crash the firmware")

	blinkCmd   = cfg.MustCommand("blink", "blink until interrupted")
	breatheCmd = cfg.MustCommand("breathe", "breathe until interrupted")
	clockCmd   = cfg.MustCommand("clock", "show the time until interrupted")

	countdownCmd = cfg.MustCommand("countdown", "count down by lighting the LEDs")
	argSeconds   = countdownCmd.NewInt32("seconds", "duration of the countdown", config.Default(int32(10)))

	randomEqCmd = cfg.MustCommand("randomeq", "show a random equalizer until interrupted")

	marqueeCmd  = cfg.MustCommand("marquee", "scroll a text through the matrix")
	argMarquee  = marqueeCmd.NewString("text", "the text")
	argMarqStep = marqueeCmd.NewInt32("step", "milliseconds per row", config.Default(int32(80)))

	colorCmd = cfg.MustCommand("color", "set or get the color of the C1 minimal")
	argColor = colorCmd.NewString("name", "white, black, red, green, blue, cyan, yellow or purple, query if not set")

	b1TextCmd = cfg.MustCommand("b1text", "show text on the B1 display")
	argB1Text = b1TextCmd.NewString("text", "ASCII text")

	b1ImageCmd = cfg.MustCommand("b1image", "show a PNG or GIF image on the B1 display, scaled to fit")
	argB1Image = b1ImageCmd.NewString("file", "image file")

	b1DisplayCmd   = cfg.MustCommand("b1display", "switch settings of the B1 display")
	argB1On        = b1DisplayCmd.NewString("display", "on or off")
	argB1Invert    = b1DisplayCmd.NewString("invert", "on or off")
	argB1Saver     = b1DisplayCmd.NewString("screensaver", "on or off")
	argB1ClearRAM  = b1DisplayCmd.NewBool("clear", "clear the framebuffer", config.Default(false))
	fpsCmd         = cfg.MustCommand("fps", "set or get the refresh rate of the B1 display")
	argFps         = fpsCmd.NewString("setting", "quarter, half, one, two, four, eight, sixteen or thirtytwo, query if not set")
	powerCmd       = cfg.MustCommand("power", "set or get the power mode of the B1 display")
	argPower       = powerCmd.NewString("mode", "low or high, query if not set")
	ledTableCmd    = cfg.MustCommand("ledtable", "print the LED to driver register table")
	argTableFormat = ledTableCmd.NewString("format", "rust or yaml", config.Default("rust"))

	serialCmd    = cfg.MustCommand("serialnum", "generate a serial number blob")
	argProduct   = serialCmd.NewString("product", "ledmatrix, ledmatrix-27k, ansi-keyboard, ... or a ten character prefix", config.Default("ledmatrix"))
	argYear      = serialCmd.NewInt32("year", "year of manufacture", config.Default(int32(2023)))
	argWeek      = serialCmd.NewInt32("week", "week of manufacture", config.Default(int32(1)))
	argDay       = serialCmd.NewInt32("day", "day of the week of manufacture", config.Default(int32(1)))
	argPart      = serialCmd.NewInt32("part", "part number", config.Default(int32(1)))
	argSerialOut = serialCmd.NewString("out", "write the blob into this file instead of printing it")

	scanCmd = cfg.MustCommand("scan", "greet LED matrices as they are attached until interrupted")
)

var log *zap.Logger

func main() {
	err := run()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	err := cfg.Run()

	if err != nil {
		return err
	}

	log = logging.New(logging.Config{
		Level:      argLogLevel.Get(),
		File:       argLogFile.Get(),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// interrupted by ctrl+c
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.ActiveCommand() {
	case listCmd:
		return list()
	case ledTableCmd:
		return inputmodule.WriteLedTable(os.Stdout, inputmodule.LedTableFormat(argTableFormat.Get()))
	case serialCmd:
		return serialNumber()
	case scanCmd:
		return scan(ctx)
	case firmwareCmd:
		return withConn(inputmodule.KindUnknown, func(c *inputmodule.Conn) error {
			v, err := c.Version()
			if err != nil {
				return err
			}
			fmt.Printf("Firmware version: %s\n", v)
			return nil
		})
	case brightnessCmd:
		return withConn(inputmodule.KindUnknown, brightness)
	case sleepCmd:
		return withConn(inputmodule.KindUnknown, sleep)
	case bootloaderCmd:
		return withConn(inputmodule.KindUnknown, func(c *inputmodule.Conn) error { return c.BootloaderReset() })
	case colorCmd:
		return withConn(inputmodule.KindC1Minimal, color)
	case b1TextCmd, b1ImageCmd, b1DisplayCmd, fpsCmd, powerCmd:
		return withConn(inputmodule.KindB1Display, func(c *inputmodule.Conn) error {
			return b1(inputmodule.NewB1Display(c))
		})
	case nil:
		return fmt.Errorf("missing command, see %s help", os.Args[0])
	default:
		return withConn(inputmodule.KindLEDMatrix, func(c *inputmodule.Conn) error {
			return ledMatrix(ctx, inputmodule.NewLEDMatrix(c))
		})
	}
}

// withConn opens the module of the given kind, runs fn and closes it again.
func withConn(kind inputmodule.Kind, fn func(*inputmodule.Conn) error) error {
	c, err := open(kind)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func open(kind inputmodule.Kind) (*inputmodule.Conn, error) {
	opts := []inputmodule.Option{inputmodule.WithLogger(log), inputmodule.WithKind(kind)}

	if argDryRun.Get() {
		opts = append(opts, inputmodule.WithName("dry-run"))
		return inputmodule.NewConn(inputmodule.NewDryRunPort(os.Stdout), opts...), nil
	}

	if argSerialDev.IsSet() {
		return inputmodule.Open(argSerialDev.Get(), opts...)
	}

	ports, err := inputmodule.SerialPorts()
	if err != nil {
		return nil, err
	}
	for _, p := range ports {
		if kind == inputmodule.KindUnknown || p.Kind == kind {
			return inputmodule.Connect(p, opts...)
		}
	}
	if kind == inputmodule.KindUnknown {
		return nil, fmt.Errorf("no input module found")
	}
	return nil, fmt.Errorf("no %s found", kind)
}

func list() error {
	ports, err := inputmodule.SerialPorts()
	if err != nil {
		return err
	}
	for _, p := range ports {
		fmt.Println(p)
	}

	devs, err := inputmodule.USBDevices()
	if err != nil {
		// without libusb access the serial ports are still useful
		log.Warn("could not list USB devices", zap.Error(err))
	}
	for _, d := range devs {
		fmt.Println(d)
	}

	if len(ports) == 0 && len(devs) == 0 {
		fmt.Println("no input modules found")
	}
	return nil
}

func onOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOffString(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func brightness(c *inputmodule.Conn) error {
	if !argBrightness.IsSet() {
		v, err := c.Brightness()
		if err != nil {
			return err
		}
		fmt.Printf("Current brightness: %d\n", v)
		return nil
	}
	v := argBrightness.Get()
	if v < 0 || v > 255 {
		return &inputmodule.ValueRangeError{What: "brightness", Value: int(v), Min: 0, Max: 255}
	}
	return c.SetBrightness(uint8(v))
}

func sleep(c *inputmodule.Conn) error {
	if !argSleep.IsSet() {
		s, err := c.Sleeping()
		if err != nil {
			return err
		}
		fmt.Printf("Currently sleeping: %s\n", onOffString(s))
		return nil
	}
	on, err := onOff(argSleep.Get())
	if err != nil {
		return err
	}
	return c.SetSleep(on)
}

func color(c *inputmodule.Conn) error {
	m := inputmodule.NewC1Minimal(c)
	if !argColor.IsSet() {
		rgb, err := m.Color()
		if err != nil {
			return err
		}
		fmt.Printf("Current color: %s\n", rgb)
		return nil
	}
	rgb, err := inputmodule.ParseColor(argColor.Get())
	if err != nil {
		return err
	}
	return m.SetColor(rgb)
}

func loadImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func serialNumber() error {
	prefix, has := inputmodule.Products[argProduct.Get()]
	if !has {
		prefix = argProduct.Get()
	}
	sn, err := inputmodule.NewSerialNumber(prefix, int(argYear.Get()), int(argWeek.Get()), int(argDay.Get()), int(argPart.Get()))
	if err != nil {
		return err
	}
	blob := sn.Blob()
	if argSerialOut.IsSet() {
		return os.WriteFile(argSerialOut.Get(), blob, 0644)
	}
	fmt.Printf("Serial:   %s\n", sn)
	fmt.Printf("Blob:     % X\n", blob)
	return nil
}

func sleepOrDone(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
