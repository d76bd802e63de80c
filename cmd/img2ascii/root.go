package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/log"
	"github.com/wbrown/img2ascii/prompt"
	"github.com/wbrown/img2ascii/version"
	"github.com/wbrown/img2ascii/view"
)

const (
	title       = "ASCII Art Converter"
	exitFailure = 1
)

// options holds the raw flag values of the root command.
type options struct {
	path       string
	width      int
	height     int
	mode       string
	configPath string
	outDir     string
	ramp       string
	font       string
	resample   string
	sharpen    bool
	colorDepth int
	compact    bool
	noView     bool
	log        *log.Config
}

// app carries the command's I/O so tests can substitute it.
type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	view       func(title, content string, inverted bool) error
	logger     *slog.Logger
}

func runViewer(title, content string, inverted bool) error {
	return view.Run(title, content, inverted)
}

func newRootCmd(a *app) *cobra.Command {
	o := &options{log: log.NewConfig()}

	cmd := &cobra.Command{
		Use:   "img2ascii",
		Short: "Convert an image into ASCII or colorized ANSI art",
		Long: title + "\n\n" + img2ascii.ModesMessage + "\n\n" +
			"Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.\n" +
			"Missing --path, --width or --mode values are asked for interactively.\n" +
			"Passing --width without --height fits the height automatically.",
		Example: "  img2ascii --path cat.png --width 200 --height 100 --mode 1\n" +
			"  img2ascii --path cat.png --width 200 --mode 3",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.convert(cmd, o)
		},
	}

	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	cmd.SetFlagErrorFunc(flagError)

	flags := cmd.Flags()
	flags.StringVar(&o.path, "path", "", "path to the image")
	flags.IntVar(&o.width, "width", 0, "art width in characters (0 asks interactively)")
	flags.IntVar(&o.height, "height", 0, "art height in characters (0 fits automatically)")
	flags.StringVar(&o.mode, "mode", "", "conversion mode (1 classic, 2 inverted, 3 colorized)")
	flags.StringVar(&o.configPath, "config", "", "YAML file with conversion defaults")
	flags.StringVar(&o.outDir, "out-dir", "", "directory for saved art (default: current directory)")
	flags.StringVar(&o.ramp, "ramp", "", "glyphs ordered from densest to sparsest")
	flags.StringVar(&o.font, "font", "", "TrueType font for colorized PNG glyphs (default: Go Mono)")
	flags.StringVar(&o.resample, "resample", "",
		"resampling method, one of: "+strings.Join(imageutil.InterpolationNames(), ", "))
	flags.BoolVar(&o.sharpen, "sharpen", false, "sharpen the image after resizing")
	flags.IntVar(&o.colorDepth, "color-depth", 0, "terminal color depth for colorized output, 24 or 8")
	flags.BoolVar(&o.compact, "compact", false, "merge same-colored runs in terminal output")
	flags.BoolVar(&o.noView, "no-view", false, "do not open the viewer after converting")
	o.log.RegisterFlags(cmd.PersistentFlags())

	mustRegister(o.log.RegisterCompletions(cmd))
	mustRegister(cmd.RegisterFlagCompletionFunc("mode",
		cobra.FixedCompletions([]string{"1", "2", "3"}, cobra.ShellCompDirectiveNoFileComp)))
	mustRegister(cmd.RegisterFlagCompletionFunc("resample",
		cobra.FixedCompletions(imageutil.InterpolationNames(), cobra.ShellCompDirectiveNoFileComp)))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})

	return cmd
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// flagError reports malformed --width and --height values as invalid
// numeric input. Other flag errors pass through unchanged.
func flagError(_ *cobra.Command, err error) error {
	var (
		invalid *pflag.InvalidValueError
		numErr  *strconv.NumError
	)
	if errors.As(err, &invalid) && errors.As(err, &numErr) {
		switch invalid.GetFlag().Name {
		case "width", "height":
			return &img2ascii.Error{
				Kind:  img2ascii.KindInvalidNumericInput,
				Input: invalid.GetValue(),
				Err:   err,
			}
		}
	}

	return err
}

// convert runs the whole pipeline. Files are written only after every
// input is validated and the conversion succeeded.
func (a *app) convert(cmd *cobra.Command, o *options) error {
	handler, err := o.log.NewHandler(a.errOut)
	if err != nil {
		return err
	}

	a.logger = slog.New(handler)

	cfg, err := a.loadConfig(cmd, o)
	if err != nil {
		return err
	}

	convOpts, err := cfg.Options()
	if err != nil {
		return err
	}

	p := prompt.New(a.in, a.out)

	fmt.Fprintln(a.out, prompt.Separator)
	fmt.Fprintln(a.out, title)

	path := o.path
	if path == "" {
		path, err = p.Path()
		if err != nil {
			return &img2ascii.Error{Kind: img2ascii.KindInputNotFound, Err: err}
		}
	}

	img, err := img2ascii.LoadImage(path)
	if err != nil {
		return err
	}

	width, height, err := a.size(p, o)
	if err != nil {
		return err
	}

	mode, err := a.mode(p, o)
	if err != nil {
		return err
	}

	convOpts = append(convOpts, img2ascii.WithLogger(a.logger))
	if mode == img2ascii.ModeColorized {
		fmt.Fprintln(a.out, prompt.Separator)
		convOpts = append(convOpts, img2ascii.WithProgress(newProgressBar(a.errOut).Update))
	}

	art, err := img2ascii.NewConverter(convOpts...).Convert(img, width, height, mode)
	if err != nil {
		return err
	}

	a.logger.Debug("converted image",
		slog.String("path", path),
		slog.String("mode", mode.String()),
		slog.Int("width", art.Width),
		slog.Int("height", art.Height),
	)

	return a.deliver(art, path, cfg.OutputDir, !o.noView)
}

// loadConfig reads the config file, if any, and applies explicitly set
// flags over it.
func (a *app) loadConfig(cmd *cobra.Command, o *options) (img2ascii.Config, error) {
	cfg := img2ascii.DefaultConfig()

	if o.configPath != "" {
		var err error

		cfg, err = img2ascii.LoadConfig(o.configPath)
		if err != nil {
			return img2ascii.Config{}, err
		}

		a.logger.Debug("loaded config", slog.String("path", o.configPath))
	}

	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.OutputDir = o.outDir
	}

	if flags.Changed("ramp") {
		cfg.Ramp = o.ramp
	}

	if flags.Changed("font") {
		cfg.Font = o.font
	}

	if flags.Changed("resample") {
		cfg.Resample = o.resample
	}

	if flags.Changed("sharpen") {
		cfg.Sharpen = o.sharpen
	}

	if flags.Changed("color-depth") {
		cfg.ColorDepth = o.colorDepth
	}

	if flags.Changed("compact") {
		cfg.Compact = o.compact
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg, nil
}

// size returns the grid size from flags, or asks for both dimensions when
// no width was given.
func (a *app) size(p *prompt.Prompter, o *options) (int, int, error) {
	if o.width == 0 {
		return p.Size()
	}

	if o.width < 0 {
		return 0, 0, &img2ascii.Error{Kind: img2ascii.KindInvalidNumericInput, Input: strconv.Itoa(o.width)}
	}

	if o.height < 0 {
		return 0, 0, &img2ascii.Error{Kind: img2ascii.KindInvalidNumericInput, Input: strconv.Itoa(o.height)}
	}

	return o.width, o.height, nil
}

func (a *app) mode(p *prompt.Prompter, o *options) (img2ascii.Mode, error) {
	if o.mode == "" {
		return p.Mode()
	}

	return img2ascii.ParseMode(o.mode)
}

// deliver saves the art and, on a terminal, shows it.
func (a *app) deliver(art *img2ascii.Art, srcPath, outDir string, show bool) error {
	show = show && a.isTerminal()

	if art.Mode == img2ascii.ModeColorized {
		saved, err := img2ascii.SaveBitmap(art.Bitmap, srcPath, outDir)
		if err != nil {
			return err
		}

		a.printSaved(saved)

		if show {
			fmt.Fprint(a.out, art.ANSI)
		}

		return nil
	}

	saved, err := img2ascii.SaveText(art.Text, srcPath, outDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, prompt.Separator)
	a.printSaved(saved)

	if show && a.view != nil {
		return a.view(title+": "+filepath.Base(srcPath), art.Text, art.Mode == img2ascii.ModeInverted)
	}

	return nil
}

func (a *app) printSaved(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	fmt.Fprintf(a.out, "Image saved to %s\n", path)
}

// reportError prints a separator and the diagnostic for err.
func (a *app) reportError(err error) {
	fmt.Fprintln(a.errOut, prompt.Separator)

	kind := img2ascii.KindOf(err)
	if kind == img2ascii.KindUnknown {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)

		return
	}

	fmt.Fprintln(a.errOut, kind.Message())

	if a.logger != nil {
		a.logger.Debug("conversion failed", slog.Any("error", err))
	}
}
