package contactqr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/vcardqr/pkg/logo"
	"github.com/dmitrymomot/vcardqr/pkg/qrcode"
)

// Config describes one generation run.
type Config struct {
	UseLogo    bool   `env:"QR_USE_LOGO" envDefault:"true"`
	LogoPath   string `env:"QR_LOGO_PATH" envDefault:"logo.png"`
	OutputPath string `env:"QR_OUTPUT_PATH" envDefault:"contact_qr_final.png"`
	FillColor  string `env:"QR_FILL_COLOR" envDefault:"#0050B5"`
	BackColor  string `env:"QR_BACK_COLOR" envDefault:"#000000"`
	Level      string `env:"QR_ERROR_CORRECTION" envDefault:"H"`
	BoxSize    int    `env:"QR_BOX_SIZE" envDefault:"10"`
	Border     int    `env:"QR_BORDER" envDefault:"0"`
	Shape      string `env:"QR_SHAPE" envDefault:"square"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		UseLogo:    true,
		LogoPath:   "logo.png",
		OutputPath: "contact_qr_final.png",
		FillColor:  "#0050B5",
		BackColor:  "#000000",
		Level:      string(qrcode.LevelH),
		BoxSize:    qrcode.DefaultBoxSize,
		Border:     qrcode.DefaultBorder,
		Shape:      string(qrcode.ShapeSquare),
	}
}

// settings is Config after parsing.
type settings struct {
	level    qrcode.Level
	shape    qrcode.Shape
	renderer *qrcode.Renderer
}

func (c Config) parse() (*settings, error) {
	var errs []error

	level, err := qrcode.ParseLevel(c.Level)
	errs = append(errs, err)
	fill, err := qrcode.ParseColor(c.FillColor)
	errs = append(errs, err)
	back, err := qrcode.ParseColor(c.BackColor)
	errs = append(errs, err)
	shape, err := qrcode.ParseShape(c.Shape)
	errs = append(errs, err)

	if strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, errors.New("output path is empty"))
	} else if _, err := logo.FormatFor(c.OutputPath); err != nil {
		errs = append(errs, err)
	}
	if c.UseLogo && strings.TrimSpace(c.LogoPath) == "" {
		errs = append(errs, errors.New("logo path is empty"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	r, err := qrcode.NewRenderer(
		qrcode.WithBoxSize(c.BoxSize),
		qrcode.WithBorder(c.Border),
		qrcode.WithFillColor(fill),
		qrcode.WithBackColor(back),
		qrcode.WithShape(shape),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &settings{
		level:    level,
		shape:    shape,
		renderer: r,
	}, nil
}

func (s *settings) String() string {
	return fmt.Sprintf("level=%s box=%d shape=%s", s.level, s.renderer.BoxSize(), s.shape)
}
