package config

// This file binds CLI flags and applies them onto a Config.
// Flags are registered on a pflag.FlagSet (owned by the cobra command) and
// applied after the config file, only when the user actually set them, so
// defaults and file values hold otherwise.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the raw flag values until [Flags.Apply] copies them into a Config.
type Flags struct {
	dryRun       bool
	keepOriginal bool
	exiftool     string
	exts         []Extension
	configFile   string
	lockDir      string
	summary      bool
	forceColor   bool
	noColor      bool
	verbose      bool
	logFile      string
	checkOnly    bool
}

// BindFlags registers all flags on fs and returns the holder they write into.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	defineBehaviorFlags(fs, f)
	defineDisplayFlags(fs, f)
	defineUtilityFlags(fs, f)
	return f
}

// defineBehaviorFlags registers dry-run, ext, keep-original, exiftool, lock-dir.
func defineBehaviorFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVarP(&f.dryRun, "dry-run", "d", false, "Print the exiftool command instead of running it")
	fs.VarP(&extensionsValue{p: &f.exts}, "ext", "e",
		"Extension to scan, repeatable: "+extensionList()+" (default: all)")
	fs.BoolVar(&f.keepOriginal, "keep-original", false, "Let exiftool keep a backup of each original file")
	fs.StringVar(&f.exiftool, "exiftool", "", `exiftool binary (default "exiftool")`)
	fs.StringVar(&f.lockDir, "lock-dir", "", "Directory for the per-root run lock (empty disables locking)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --summary, --log.
func defineDisplayFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.summary, "summary", false, "Print a summary table after the run")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
}

// defineUtilityFlags registers --config and --check.
func defineUtilityFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVarP(&f.configFile, "config", "c", "", "TOML config file (default ~/.config/exifdate/config.toml)")
	fs.BoolVar(&f.checkOnly, "check", false, "Run exiftool diagnostics and exit")
}

// ConfigPath returns the --config value (empty when unset).
func (f *Flags) ConfigPath() string { return f.configFile }

// Apply copies every flag the user explicitly set on fs into cfg, and sets
// RootDir from the positional args.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config, args []string) {
	if fs.Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if fs.Changed("ext") {
		cfg.Extensions = append([]Extension(nil), f.exts...)
	}
	if fs.Changed("keep-original") {
		cfg.KeepOriginal = f.keepOriginal
	}
	if fs.Changed("exiftool") {
		cfg.ExiftoolPath = f.exiftool
	}
	if fs.Changed("lock-dir") {
		cfg.LockDir = f.lockDir
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fs.Changed("summary") {
		cfg.ShowSummary = f.summary
	}
	if fs.Changed("log") {
		cfg.LogFile = f.logFile
	}
	if fs.Changed("check") {
		cfg.CheckOnly = f.checkOnly
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if len(args) > 0 {
		cfg.RootDir = NormalizeDirArg(args[0])
	}
}

// extensionsValue adapts a repeatable, enum-restricted flag to pflag.Value.
// Each occurrence may also carry a comma-separated list.
type extensionsValue struct{ p *[]Extension }

func (v *extensionsValue) String() string {
	if v.p == nil {
		return ""
	}
	names := make([]string, len(*v.p))
	for i, e := range *v.p {
		names[i] = string(e)
	}
	return strings.Join(names, ",")
}

func (v *extensionsValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		e, err := ParseExtension(part)
		if err != nil {
			return err
		}
		*v.p = append(*v.p, e)
	}
	if len(*v.p) == 0 {
		return fmt.Errorf("empty extension list %q", s)
	}
	return nil
}

func (v *extensionsValue) Type() string { return "ext" }
