package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/vcardqr/pkg/config"
	"github.com/dmitrymomot/vcardqr/pkg/logger"
	"github.com/dmitrymomot/vcardqr/pkg/logo"
	"github.com/dmitrymomot/vcardqr/pkg/vcard"
	"github.com/dmitrymomot/vcardqr/svc/contactqr"
)

// newApp wires the command. A nil environ reads the process environment.
func newApp(stdout, stderr io.Writer, environ map[string]string) *cli.App {
	return &cli.App{
		Name:      "vcardqr",
		Usage:     "render a vCard as a QR code with a centered logo",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "contact", Aliases: []string{"c"}, Usage: "YAML contact `FILE`, the sample card when omitted"},
			&cli.BoolFlag{Name: "uid", Usage: "add a UID derived from name and email"},
			&cli.StringFlag{Name: "logo", Aliases: []string{"l"}, Usage: "logo image `FILE`"},
			&cli.BoolFlag{Name: "no-logo", Usage: "render without a logo"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output image `FILE`, format from extension"},
			&cli.StringFlag{Name: "fill", Usage: "module color"},
			&cli.StringFlag{Name: "back", Usage: "background color"},
			&cli.StringFlag{Name: "level", Usage: "error correction level L, M, Q or H"},
			&cli.IntFlag{Name: "box-size", Usage: "pixels per module"},
			&cli.IntFlag{Name: "border", Usage: "quiet zone in modules"},
			&cli.StringFlag{Name: "shape", Usage: "module shape, square or circle"},
			&cli.BoolFlag{Name: "data-uri", Usage: "print a PNG data URI instead of storing the image"},
			&cli.StringFlag{Name: "env", Usage: "logging preset: development, staging or production"},
			&cli.StringSliceFlag{Name: "env-file", Usage: "load variables from `FILE` (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			return run(c, environ)
		},
	}
}

func run(c *cli.Context, environ map[string]string) error {
	var opts []config.Option
	if files := c.StringSlice("env-file"); len(files) > 0 {
		opts = append(opts, config.WithEnvFiles(files...))
	}
	if environ != nil {
		opts = append(opts, config.WithEnvironment(environ))
	}

	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return err
	}
	applyFlags(c, &cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "vcardqr"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(c.App.ErrWriter),
		logger.WithContextExtractors(contactqr.LoggerExtractor()),
	)
	ctx := contactqr.WithRunID(c.Context, uuid.NewString())

	card, err := loadContact(c.String("contact"), c.Bool("uid"))
	if err != nil {
		return err
	}
	content, err := card.Encode()
	if err != nil {
		return err
	}

	genOpts := []contactqr.Option{contactqr.WithLogger(log)}
	if cfg.QR.UseLogo && cfg.QR.LogoPath != "" {
		src, key, err := newLogoSource(cfg.QR.LogoPath)
		if err != nil {
			return err
		}
		cfg.QR.LogoPath = key
		genOpts = append(genOpts, contactqr.WithLogoSource(src))
	}

	if c.Bool("data-uri") {
		gen, err := contactqr.New(cfg.QR, genOpts...)
		if err != nil {
			return err
		}
		img, res, err := gen.Render(ctx, content)
		if err != nil {
			return err
		}
		uri, err := logo.DataURI(img)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, uri)
		printLogo(c.App.ErrWriter, res)
		return nil
	}

	storage, key, err := newStorage(ctx, cfg.Storage, cfg.QR.OutputPath)
	if err != nil {
		return err
	}
	cfg.QR.OutputPath = key
	genOpts = append(genOpts, contactqr.WithStorage(storage))

	gen, err := contactqr.New(cfg.QR, genOpts...)
	if err != nil {
		return err
	}
	res, err := gen.Generate(ctx, content)
	if err != nil {
		return err
	}
	printSummary(c.App.Writer, res)
	return nil
}

// applyFlags lets explicitly set flags override env values.
func applyFlags(c *cli.Context, cfg *appConfig) {
	if c.IsSet("env") {
		cfg.Env = c.String("env")
	}
	if c.IsSet("logo") {
		cfg.QR.LogoPath = c.String("logo")
		cfg.QR.UseLogo = true
	}
	if c.Bool("no-logo") {
		cfg.QR.UseLogo = false
	}
	if c.IsSet("output") {
		cfg.QR.OutputPath = c.String("output")
	}
	if c.IsSet("fill") {
		cfg.QR.FillColor = c.String("fill")
	}
	if c.IsSet("back") {
		cfg.QR.BackColor = c.String("back")
	}
	if c.IsSet("level") {
		cfg.QR.Level = c.String("level")
	}
	if c.IsSet("box-size") {
		cfg.QR.BoxSize = c.Int("box-size")
	}
	if c.IsSet("border") {
		cfg.QR.Border = c.Int("border")
	}
	if c.IsSet("shape") {
		cfg.QR.Shape = c.String("shape")
	}
}

func loadContact(path string, uid bool) (vcard.Contact, error) {
	card := vcard.Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return vcard.Contact{}, err
		}
		defer f.Close()

		card, err = vcard.LoadYAML(f)
		if err != nil {
			return vcard.Contact{}, err
		}
	}
	if uid {
		card = card.WithDeterministicUID()
	}
	return card, nil
}

func printSummary(w io.Writer, res *contactqr.Result) {
	fmt.Fprintf(w, "QR code saved to %s\n", res.Path)
	if res.URL != "" && res.URL != res.Path {
		fmt.Fprintf(w, "  url: %s\n", res.URL)
	}
	fmt.Fprintf(w, "  version %d, %d modules, %dpx\n", res.Version, res.ModuleCount, res.ImageSize)
	printLogo(w, res)
}

func printLogo(w io.Writer, res *contactqr.Result) {
	switch {
	case res.LogoEmbedded:
		fmt.Fprintf(w, "  logo embedded: %dx%dpx, %d modules cleared (%.1f%%)\n",
			res.LogoSize.X, res.LogoSize.Y, res.Mask.Cleared, res.Mask.Fraction*100)
	case res.LogoWarning != nil:
		fmt.Fprintf(w, "  generated without logo: %v\n", res.LogoWarning)
	default:
		fmt.Fprintln(w, "  logo disabled")
	}
}
