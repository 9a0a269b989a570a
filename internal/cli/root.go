// Package cli wires the iconbanner command line to the config, app and
// render packages.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rook-computer/iconbanner/internal/app"
	"github.com/rook-computer/iconbanner/internal/config"
	"github.com/rook-computer/iconbanner/internal/logging"
	"github.com/rook-computer/iconbanner/internal/render"
)

// Options carries process-level dependencies so the command tree holds no
// package state.
type Options struct {
	Version string
	// Stdout and Stderr default to os.Stdout and os.Stderr, read when the
	// command runs so a --stdio-log redirect that swaps them is honoured.
	Stdout io.Writer
	Stderr io.Writer
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// RedirectStdIO handles --stdio-log; nil disables the flag's effect.
	RedirectStdIO func(path string) error
}

type rootFlags struct {
	configPath   string
	text         string
	font         string
	height       float64
	padding      float64
	outputs      []string
	suffix       string
	size         string
	bannerSize   string
	position     string
	bannerColor  string
	textColor    string
	opacity      float64
	fontFallback bool
	keepGoing    bool
	dryRun       bool
	logLevel     string
	stdioLog     string
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	var fl rootFlags
	cmd := &cobra.Command{
		Use:   "iconbanner [flags] <icon>...",
		Short: "Overlay a text banner onto app icons",
		Long: `Overlay a text banner such as BETA or DEV onto copies of application icons.

Each input icon is paired by position with an output path (--output, repeatable).
Without --output, outputs are derived from the inputs: icon.png -> icon_beta.png.
Without arguments, the icons listed in the config file are used.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, fl, args)
		},
	}
	if opts.Stdout != nil {
		cmd.SetOut(opts.Stdout)
	}
	if opts.Stderr != nil {
		cmd.SetErr(opts.Stderr)
	}

	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "config file (default: "+config.DefaultPath+" when present)")
	f.StringVarP(&fl.text, "text", "t", "", "banner text; also configurable via "+config.EnvText)
	f.StringVarP(&fl.font, "font", "f", "", "built-in font name or path to a TTF/OTF file; also configurable via "+config.EnvFont)
	f.Float64Var(&fl.height, "height", 0, "banner text height in pixels; also configurable via "+config.EnvHeight)
	f.Float64Var(&fl.padding, "padding", 0, "extra vertical banner padding in pixels; also configurable via "+config.EnvPadding)
	f.StringArrayVarP(&fl.outputs, "output", "o", nil, "output path, paired with inputs by position (repeatable)")
	f.StringVar(&fl.suffix, "suffix", "", "suffix for derived output names (default: _<text>)")
	f.StringVar(&fl.size, "size", "", "resize icons to WIDTHxHEIGHT before drawing")
	f.StringVar(&fl.bannerSize, "banner-size", "", "banner WIDTHxHEIGHT (default: icon width x height+padding)")
	f.StringVar(&fl.position, "position", "", "banner edge: bottom or top")
	f.StringVar(&fl.bannerColor, "banner-color", "", "banner fill colour (#rrggbb)")
	f.StringVar(&fl.textColor, "text-color", "", "text colour (#rrggbb)")
	f.Float64Var(&fl.opacity, "opacity", 0, "banner fill opacity in [0,1]")
	f.BoolVar(&fl.fontFallback, "font-fallback", false, "use the default font when the requested one is unavailable")
	f.BoolVar(&fl.keepGoing, "keep-going", false, "continue with the remaining icons after a failure")
	f.BoolVar(&fl.dryRun, "dry-run", false, "validate and print the plan without writing files")
	f.StringVar(&fl.logLevel, "log-level", "", "debug, info, warn or error; also configurable via "+config.EnvLogLevel)
	f.StringVar(&fl.stdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file")

	cmd.AddCommand(newFontsCommand(), newVersionCommand(opts.Version))
	return cmd
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

func runRoot(cmd *cobra.Command, opts Options, fl rootFlags, args []string) error {
	if fl.stdioLog != "" && opts.RedirectStdIO != nil {
		if err := opts.RedirectStdIO(fl.stdioLog); err != nil {
			fmt.Fprintln(opts.stderr(), "stdio log redirect error:", err)
		}
	}
	stdout, stderr := opts.stdout(), opts.stderr()

	file, err := config.Load(fl.configPath)
	if err != nil {
		return err
	}
	if err := file.ApplyEnv(opts.LookupEnv); err != nil {
		return err
	}
	applyFlags(cmd, fl, &file)

	logger := logging.NewLogger(stderr, "iconbanner", opts.Version, file.LogLevel)
	logger.Debug("configuration resolved", "config", fl.configPath, "text", file.Text, "font", file.Font)

	cfg, err := file.Overlay(args, fl.outputs)
	if err != nil {
		return err
	}

	a := app.New(render.NewRenderer(file.RenderStyle()))
	a.Logger = app.NewSlogLogger(logger)
	a.KeepGoing = fl.keepGoing
	a.DryRun = fl.dryRun

	summary, err := a.Run(cmd.Context(), cfg)
	if fl.dryRun && err == nil {
		for _, p := range cfg.Pairs() {
			fmt.Fprintf(stdout, "%s -> %s\n", p.Input, p.Output)
		}
		return nil
	}
	if summary != nil {
		for _, o := range summary.Outcomes {
			if o.Err == nil {
				fmt.Fprintf(stdout, "%s\n", o.Output)
			}
		}
	}
	return err
}

// applyFlags copies explicitly set flags over the file/env values.
func applyFlags(cmd *cobra.Command, fl rootFlags, file *config.File) {
	changed := cmd.Flags().Changed
	if changed("text") {
		file.Text = fl.text
	}
	if changed("font") {
		file.Font = fl.font
	}
	if changed("height") {
		file.BannerHeight = fl.height
	}
	if changed("padding") {
		file.BannerHeightPadding = fl.padding
	}
	if changed("suffix") {
		file.Suffix = fl.suffix
	}
	if changed("size") {
		file.ImageSize = fl.size
	}
	if changed("banner-size") {
		file.BannerSize = fl.bannerSize
	}
	if changed("position") {
		file.Style.Position = fl.position
	}
	if changed("banner-color") {
		file.Style.BannerColor = fl.bannerColor
	}
	if changed("text-color") {
		file.Style.TextColor = fl.textColor
	}
	if changed("opacity") {
		file.Style.Opacity = fl.opacity
	}
	if changed("font-fallback") {
		file.Style.FontFallback = fl.fontFallback
	}
	if changed("log-level") {
		file.LogLevel = fl.logLevel
	}
}
