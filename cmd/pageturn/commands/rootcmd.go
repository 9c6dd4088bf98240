// Package commands implements the pageturn command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"

	"github.com/gogpu/pageturn"
	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
)

var versionInfo = struct{ version, commit, date string }{"dev", "none", "unknown"}

// SetVersionInfo records the build metadata printed by the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

// enumFlags lists the flags whose value is parsed by enumflag. Values coming
// from the environment or the config file are fed back through the flag so
// they share its parsing.
var enumFlags = []string{"log", "font", "background", "flip-style", "easing"}

// options holds the state shared by every command of one command tree.
type options struct {
	v          *viper.Viper
	configFile string

	logLevel   slog.Level
	font       page.FontFamily
	background page.Background
	flipStyle  page.FlipStyle
	easing     easing
}

// NewRootCommand builds the pageturn command tree.
func NewRootCommand() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

func newRootCommand() (*cobra.Command, *options) {
	defaults := page.DefaultReaderConfig()
	o := &options{
		v:          viper.New(),
		logLevel:   slog.LevelWarn,
		font:       defaults.FontFamily,
		background: defaults.Background,
		flipStyle:  defaults.FlipStyle,
	}

	root := &cobra.Command{
		Use:          "pageturn",
		Short:        "Paginate text and render page flips headlessly",
		Version:      fmt.Sprintf("%s (Built on %s from Git SHA %s)", versionInfo.version, versionInfo.date, versionInfo.commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file (default <user config dir>/pageturn/config.yaml)")
	pf.VarP(
		enumflag.New(&o.logLevel, "log", LogLevelIds, enumflag.EnumCaseInsensitive),
		"log", "l",
		"Set log level; can be 'debug', 'info', 'warn' or 'error'")

	pf.Float64("font-size", defaults.FontSize, "body text size in sp")
	pf.Float64("line-height", defaults.LineHeightRatio, "line height as a multiple of the font size")
	pf.Float64("paragraph-spacing", defaults.ParagraphSpacing, "extra space after each paragraph in sp")
	pf.Float64("padding", defaults.HorizontalPadding, "left and right margin in dp")
	pf.Float64("top-padding", defaults.TopPadding, "top margin in dp")
	pf.Float64("bottom-padding", defaults.BottomPadding, "bottom margin in dp")
	pf.String("text-color", "", "text color override, e.g. #202020")
	pf.String("bg-image", "", "background image drawn stretched over each page")

	fontFlag := enumflag.New(&o.font, "font", FontIds, enumflag.EnumCaseInsensitive)
	pf.Var(fontFlag, "font", "font family; can be 'sans', 'medium', 'italic', 'mono' or 'smallcaps'")
	_ = fontFlag.RegisterCompletion(root, "font", fontHelp)
	bgFlag := enumflag.New(&o.background, "background", BackgroundIds, enumflag.EnumCaseInsensitive)
	pf.Var(bgFlag, "background", "palette entry; can be 'paper', 'sepia', 'green', 'gray' or 'night'")
	_ = bgFlag.RegisterCompletion(root, "background", backgroundHelp)
	pf.Var(enumflag.New(&o.flipStyle, "flip-style", FlipStyleIds, enumflag.EnumCaseInsensitive),
		"flip-style", "page turn animation; can be 'slide', 'simulation' or 'scroll'")

	pf.Int("width", 1080, "page width in pixels")
	pf.Int("height", 1920, "page height in pixels")
	pf.Float64("density", 2.625, "pixels per dp")
	pf.Float64("scaled-density", 0, "pixels per sp (default: density)")
	pf.Int("speed", pageturn.DefaultAnimationSpeed, "flip duration in ms for a full page width")
	pf.Float64("touch-slop", pageturn.DefaultTouchSlop, "drag threshold in pixels")
	pf.Var(enumflag.New(&o.easing, "easing", easingIds, enumflag.EnumCaseInsensitive),
		"easing", "flip animation curve; can be 'linear' or 'viscous'")

	root.AddCommand(newRenderCommand(o), newFlipCommand(o), newVersionCommand())
	return root, o
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pageturn")
}

// load resolves configuration in viper's order (flag, env, config file,
// default) and installs the logger.
func (o *options) load(cmd *cobra.Command) error {
	o.v.SetEnvPrefix("PAGETURN")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if o.configFile != "" {
		o.v.SetConfigFile(o.configFile)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else if dir := configDir(); dir != "" {
		o.v.SetConfigName("config")
		o.v.SetConfigType("yaml")
		o.v.AddConfigPath(dir)
		if err := o.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	for _, name := range enumFlags {
		if err := o.syncEnum(cmd.Flags(), name); err != nil {
			return err
		}
	}
	o.configureLogging(cmd.ErrOrStderr())
	return nil
}

// syncEnum applies an env or config file value to an enum flag the user
// did not set on the command line.
func (o *options) syncEnum(flags *pflag.FlagSet, name string) error {
	f := flags.Lookup(name)
	if f == nil || f.Changed {
		return nil
	}
	want := o.v.GetString(name)
	if want == "" || want == f.Value.String() {
		return nil
	}
	if err := f.Value.Set(want); err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, want, err)
	}
	return nil
}

// configureLogging routes the engine's log output to w at the selected level.
func (o *options) configureLogging(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: o.logLevel})
	pageturn.SetLogger(slog.New(h))
}

// readerConfig builds and validates the page style.
func (o *options) readerConfig() (page.ReaderConfig, error) {
	cfg := page.ReaderConfig{
		FontSize:          o.v.GetFloat64("font-size"),
		LineHeightRatio:   o.v.GetFloat64("line-height"),
		ParagraphSpacing:  o.v.GetFloat64("paragraph-spacing"),
		HorizontalPadding: o.v.GetFloat64("padding"),
		TopPadding:        o.v.GetFloat64("top-padding"),
		BottomPadding:     o.v.GetFloat64("bottom-padding"),
		Background:        o.background,
		FontFamily:        o.font,
		BackgroundImage:   o.v.GetString("bg-image"),
		TextColor:         o.v.GetString("text-color"),
		FlipStyle:         o.flipStyle,
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", pageturn.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// params returns the page geometry.
func (o *options) params() (render.Params, error) {
	p := render.Params{
		Width:         o.v.GetInt("width"),
		Height:        o.v.GetInt("height"),
		Density:       o.v.GetFloat64("density"),
		ScaledDensity: o.v.GetFloat64("scaled-density"),
	}
	if !p.Ready() {
		return p, fmt.Errorf("invalid page size %dx%d", p.Width, p.Height)
	}
	return p, nil
}
