package contactqr

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/dmitrymomot/vcardqr/pkg/file"
	"github.com/dmitrymomot/vcardqr/pkg/logger"
	"github.com/dmitrymomot/vcardqr/pkg/logo"
	"github.com/dmitrymomot/vcardqr/pkg/qrcode"
)

// Result summarizes a run.
type Result struct {
	Path         string // Storage key of the image, empty for Render
	URL          string
	ContentType  string
	Version      int
	ModuleCount  int
	ImageSize    int // Edge of the square bitmap in pixels
	LogoEmbedded bool
	LogoSize     image.Point
	LogoWarning  error // Why the logo was skipped, if it was
	Mask         qrcode.Mask
}

// Generator produces contact QR images. It is safe for concurrent use.
type Generator struct {
	cfg     Config
	set     *settings
	storage file.Storage
	logos   logo.Opener
	log     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithStorage sets where Generate writes the image.
func WithStorage(s file.Storage) Option {
	return func(g *Generator) {
		if s != nil {
			g.storage = s
		}
	}
}

// WithLogoSource sets where the logo is read from.
func WithLogoSource(o logo.Opener) Option {
	return func(g *Generator) {
		if o != nil {
			g.logos = o
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New validates cfg and returns a Generator. Storage and logo source
// default to the working directory.
func New(cfg Config, opts ...Option) (*Generator, error) {
	set, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg: cfg,
		set: set,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.storage == nil || g.logos == nil {
		cwd, err := file.NewLocalStorage(".", "")
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		if g.storage == nil {
			g.storage = cwd
		}
		if g.logos == nil {
			g.logos = cwd
		}
	}

	g.log = g.log.With(logger.Component("contactqr"))
	g.log.Debug("generator ready", slog.String("settings", set.String()))
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate renders content and stores the image at the configured output path.
func (g *Generator) Generate(ctx context.Context, content string) (*Result, error) {
	start := time.Now()

	img, res, err := g.Render(ctx, content)
	if err != nil {
		return nil, err
	}

	data, format, err := logo.EncodeBytes(img, g.cfg.OutputPath)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}

	obj, err := g.storage.Put(ctx, g.cfg.OutputPath, data, logo.ContentType(format))
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}

	res.Path = obj.Path
	res.URL = obj.URL
	res.ContentType = obj.ContentType

	g.log.InfoContext(ctx, "qr code stored",
		logger.Path(obj.Path),
		logger.URL(obj.URL),
		slog.Bool("logo", res.LogoEmbedded),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

// Render runs the pipeline without storing the result.
func (g *Generator) Render(ctx context.Context, content string) (*image.NRGBA, *Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	grid, err := qrcode.Encode(content, g.set.level)
	if err != nil {
		return nil, nil, errors.Join(ErrEncoding, err)
	}

	res := &Result{
		Version:     qrcode.Version(grid),
		ModuleCount: grid.Size(),
		ImageSize:   g.set.renderer.ImageSize(grid.Size()),
	}
	g.log.DebugContext(ctx, "payload encoded",
		slog.Int("version", res.Version),
		logger.ModuleCount(res.ModuleCount),
		slog.String("level", g.set.level.String()),
	)

	var mark image.Image
	if g.cfg.UseLogo {
		mark, res.LogoWarning = g.prepareLogo(ctx, grid)
		if res.LogoWarning != nil {
			g.log.WarnContext(ctx, "logo unavailable, generating QR code without logo",
				logger.Path(g.cfg.LogoPath),
				logger.Error(res.LogoWarning),
			)
		}
	}

	if mark != nil {
		b := mark.Bounds()
		res.LogoSize = image.Pt(b.Dx(), b.Dy())
		res.Mask = qrcode.MaskForLogo(grid, b.Dx(), b.Dy(), g.set.renderer.BoxSize())
		res.LogoEmbedded = true

		g.log.DebugContext(ctx, "logo area cleared",
			logger.Group("mask",
				logger.Region(res.Mask.Region),
				slog.Int("cleared", res.Mask.Cleared),
				logger.Fraction("fraction", res.Mask.Fraction),
			),
			logger.Size(b.Dx(), b.Dy()),
		)
		if res.Mask.Fraction > qrcode.MaxClearFraction {
			g.log.WarnContext(ctx, "logo clears more modules than error correction can recover",
				logger.Fraction("fraction", res.Mask.Fraction),
				logger.Fraction("limit", qrcode.MaxClearFraction),
			)
		}
	}

	img := g.set.renderer.Render(grid)
	if mark != nil {
		img = logo.Composite(img, mark)
	}
	return img, res, nil
}

// prepareLogo loads the logo and shrinks it to the size policy. It warns,
// but proceeds, when the level is too weak for a logo.
func (g *Generator) prepareLogo(ctx context.Context, grid *qrcode.Grid) (image.Image, error) {
	src, err := logo.Load(ctx, g.logos, g.cfg.LogoPath)
	if err != nil {
		return nil, err
	}

	if g.set.level != qrcode.LevelH {
		g.log.WarnContext(ctx, "error correction below H with a logo, the code may not scan",
			slog.String("level", g.set.level.String()),
		)
	}

	limit := logo.MaxSize(grid.Size() * g.set.renderer.BoxSize())
	fitted := logo.Fit(src, limit)
	if fitted.Bounds().Empty() {
		return nil, nil
	}
	return fitted, nil
}
