package inputmodule

// C1Minimal is the module with a single RGB LED. The QT Py development
// board speaks the same commands.
type C1Minimal struct {
	*Conn
}

func NewC1Minimal(c *Conn) *C1Minimal {
	return &C1Minimal{Conn: c}
}

// Colors are the named colours understood by ParseColor.
var Colors = map[string]RGB{
	"white":  {0xFF, 0xFF, 0xFF},
	"black":  {0x00, 0x00, 0x00},
	"red":    {0xFF, 0x00, 0x00},
	"green":  {0x00, 0xFF, 0x00},
	"blue":   {0x00, 0x00, 0xFF},
	"cyan":   {0x00, 0xFF, 0xFF},
	"yellow": {0xFF, 0xFF, 0x00},
	"purple": {0xFF, 0x00, 0xFF},
}

// ParseColor returns the colour with the given name.
func ParseColor(name string) (RGB, error) {
	if c, has := Colors[name]; has {
		return c, nil
	}
	return RGB{}, &UnrecognizedValueError{Kind: "color", Name: name}
}

func (m *C1Minimal) SetColor(c RGB) error {
	return m.Send(SetColor(c))
}

func (m *C1Minimal) Color() (RGB, error) {
	resp, err := m.Query(GetColor())
	if err != nil {
		return RGB{}, err
	}
	return DecodeRGB(resp)
}
