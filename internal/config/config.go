package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppsPageName is the page whose items and corner buttons configure the shell.
const AppsPageName = "Apps"

// CornerButtonCount is the number of corner buttons the Apps page must define:
// two for the top bar, two for the bottom bar.
const CornerButtonCount = 4

// ErrCornerButtons reports an Apps page without exactly four corner buttons.
var ErrCornerButtons = errors.New("apps page needs exactly 4 corner buttons")

// Config is the launcher layout plus the runtime knobs around it.
type Config struct {
	DefaultPage string
	Pages       []Page
	AssetRoot   string
	Status      Status
	Power       Power
	Log         Log

	// Path is the file the config was read from; empty for built-in defaults.
	Path string
}

// Page is one entry of the pages list. Only the Apps page carries items and
// corner buttons today; other entries are accepted and ignored.
type Page struct {
	Name          string   `toml:"name" yaml:"name"`
	Items         []Item   `toml:"items" yaml:"items"`
	CornerButtons []Button `toml:"cornerButtons" yaml:"cornerButtons"`
}

// Item is an app entry shown on the Apps page and in the library.
type Item struct {
	Name  string `toml:"name" yaml:"name"`
	Icon  string `toml:"icon" yaml:"icon"`
	Shell string `toml:"shell" yaml:"shell"`
}

// Button is a corner button. Its name doubles as the page alias it opens.
type Button struct {
	Name string `toml:"name" yaml:"name"`
	Icon string `toml:"icon" yaml:"icon"`
}

// Status holds polling cadences.
type Status struct {
	SampleInterval time.Duration // battery sampler wait between samples
	BatteryRefresh time.Duration // battery icon presenter period
	WifiRefresh    time.Duration // Wi-Fi icon presenter period
	SpinnerFrame   time.Duration // launch spinner frame period
	StopGrace      time.Duration // bound on joining the sampler at shutdown
	WifiInterface  string        // empty picks the first station interface
}

// Power holds shell commands for the power page actions. Empty disables an action.
type Power struct {
	Shutdown string `toml:"shutdown" yaml:"shutdown"`
	Reboot   string `toml:"reboot" yaml:"reboot"`
	Sleep    string `toml:"sleep" yaml:"sleep"`
}

// Log configures the file logger. The TUI owns the terminal, so logs never go
// to stdout.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

const (
	defaultConfigPath = "~/.config/kiosk/config.toml"
	defaultAssetRoot  = "~/.local/share/kiosk/assets"
	defaultLogFile    = "~/.local/state/kiosk/kiosk.log"
	defaultLogLevel   = "info"

	defaultSampleInterval = 2 * time.Second
	defaultBatteryRefresh = time.Second
	defaultWifiRefresh    = 5 * time.Second
	defaultSpinnerFrame   = time.Second
	defaultStopGrace      = 100 * time.Millisecond
)

type rawConfig struct {
	DefaultPage string    `toml:"defaultPage" yaml:"defaultPage"`
	AssetRoot   string    `toml:"assetRoot" yaml:"assetRoot"`
	Pages       []Page    `toml:"pages" yaml:"pages"`
	Status      rawStatus `toml:"status" yaml:"status"`
	Power       Power     `toml:"power" yaml:"power"`
	Log         Log       `toml:"log" yaml:"log"`
}

type rawStatus struct {
	SampleInterval string `toml:"sampleInterval" yaml:"sampleInterval"`
	BatteryRefresh string `toml:"batteryRefresh" yaml:"batteryRefresh"`
	WifiRefresh    string `toml:"wifiRefresh" yaml:"wifiRefresh"`
	SpinnerFrame   string `toml:"spinnerFrame" yaml:"spinnerFrame"`
	StopGrace      string `toml:"stopGrace" yaml:"stopGrace"`
	WifiInterface  string `toml:"wifiInterface" yaml:"wifiInterface"`
}

// Default returns the built-in layout used when no config file exists.
func Default() Config {
	return Config{
		DefaultPage: AppsPageName,
		Pages: []Page{{
			Name: AppsPageName,
			CornerButtons: []Button{
				{Name: "WiFi", Icon: "wifiStrength0.png"},
				{Name: "Battery", Icon: "battery_0.png"},
				{Name: "Apps", Icon: "apps.png"},
				{Name: "AppsLibrary", Icon: "library.png"},
			},
		}},
		AssetRoot: mustExpand(defaultAssetRoot),
		Status: Status{
			SampleInterval: defaultSampleInterval,
			BatteryRefresh: defaultBatteryRefresh,
			WifiRefresh:    defaultWifiRefresh,
			SpinnerFrame:   defaultSpinnerFrame,
			StopGrace:      defaultStopGrace,
		},
		Log: Log{Level: defaultLogLevel, File: mustExpand(defaultLogFile)},
	}
}

// Load locates and parses the launcher config, falling back to defaults when
// the file is missing. TOML is the native format; .yaml, .yml and .json files
// are read with the YAML decoder so JSON layouts from older devices load as is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml", ".json":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := fromRaw(raw, filepath.Dir(resolved))
	if err != nil {
		return Config{}, err
	}
	cfg.Path = resolved

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromRaw(raw rawConfig, baseDir string) (Config, error) {
	defaults := Default()
	cfg := Config{
		DefaultPage: strings.TrimSpace(raw.DefaultPage),
		Pages:       raw.Pages,
		Power:       raw.Power,
		Log:         raw.Log,
	}

	cfg.AssetRoot = strings.TrimSpace(raw.AssetRoot)
	if cfg.AssetRoot == "" {
		cfg.AssetRoot = defaults.AssetRoot
	} else {
		if !strings.HasPrefix(cfg.AssetRoot, "~") && !filepath.IsAbs(cfg.AssetRoot) {
			cfg.AssetRoot = filepath.Join(baseDir, cfg.AssetRoot)
		}
		cfg.AssetRoot = mustExpand(cfg.AssetRoot)
	}

	durations := []struct {
		field string
		raw   string
		def   time.Duration
		dst   *time.Duration
	}{
		{"sampleInterval", raw.Status.SampleInterval, defaults.Status.SampleInterval, &cfg.Status.SampleInterval},
		{"batteryRefresh", raw.Status.BatteryRefresh, defaults.Status.BatteryRefresh, &cfg.Status.BatteryRefresh},
		{"wifiRefresh", raw.Status.WifiRefresh, defaults.Status.WifiRefresh, &cfg.Status.WifiRefresh},
		{"spinnerFrame", raw.Status.SpinnerFrame, defaults.Status.SpinnerFrame, &cfg.Status.SpinnerFrame},
		{"stopGrace", raw.Status.StopGrace, defaults.Status.StopGrace, &cfg.Status.StopGrace},
	}
	for _, d := range durations {
		v, err := parseDuration(d.raw, d.def)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: status.%s: %w", d.field, err)
		}
		*d.dst = v
	}
	cfg.Status.WifiInterface = strings.TrimSpace(raw.Status.WifiInterface)

	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	} else {
		cfg.Log.File = mustExpand(cfg.Log.File)
	}

	return cfg, nil
}

func parseDuration(value string, def time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", trimmed)
	}
	return d, nil
}

// Validate rejects layouts the shell cannot build.
func (c Config) Validate() error {
	apps, ok := c.AppsPage()
	if !ok {
		return nil
	}
	if n := len(apps.CornerButtons); n != CornerButtonCount {
		return fmt.Errorf("%w: got %d", ErrCornerButtons, n)
	}
	for i, b := range apps.CornerButtons {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("apps page corner button %d has no name", i)
		}
	}
	return nil
}

// AppsPage returns the first page named Apps.
func (c Config) AppsPage() (Page, bool) {
	for _, p := range c.Pages {
		if p.Name == AppsPageName {
			return p, true
		}
	}
	return Page{}, false
}

// CornerButtons splits the Apps page corner buttons into the top-left/top-right
// and bottom-left/bottom-right pairs. Both are empty without a valid Apps page.
func (c Config) CornerButtons() (top, bottom []Button) {
	apps, ok := c.AppsPage()
	if !ok || len(apps.CornerButtons) != CornerButtonCount {
		return nil, nil
	}
	top = append(top, apps.CornerButtons[0], apps.CornerButtons[1])
	bottom = append(bottom, apps.CornerButtons[2], apps.CornerButtons[3])
	return top, bottom
}

// Items returns the Apps page items, forwarded as is to the page collaborators.
func (c Config) Items() []Item {
	apps, _ := c.AppsPage()
	return apps.Items
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
