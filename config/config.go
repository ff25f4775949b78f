package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/oliverbestmann/gaminglife/gesture"
	"github.com/oliverbestmann/gaminglife/graph"
)

const (
	GroupIdRelax  = "5084b76d-4e75-4c44-9786-bdf94075f94d"
	GroupIdEnjoy  = "f9fb401a-dc28-463f-92a6-0d30bd8730bb"
	GroupIdLife   = "3e9fd903-9c51-4301-b610-715205983573"
	GroupIdWork   = "11000041-0376-4876-9efa-8a6a7028140d"
	GroupIdStudy  = "1841978a-3adc-413a-a9ae-a34e019205f8"
	GroupIdCreate = "fa94a546-beeb-4570-b266-c066a4a31233"
)

type Config struct {
	Debug bool `toml:"debug"`

	Window      Window      `toml:"window"`
	Interaction Interaction `toml:"interaction"`
	Gesture     Gesture     `toml:"gesture"`

	Groups []TaskGroup `toml:"group"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Interaction struct {
	InflatePct        float64  `toml:"inflate_pct"`
	Vibrate           Duration `toml:"vibrate"`
	LongPressTimeout  Duration `toml:"long_press_timeout"`
	LongPressInterval Duration `toml:"long_press_interval"`

	// distance in units a long press may be dragged before it is abandoned
	AbandonDistance float64 `toml:"abandon_distance"`
}

type Gesture struct {
	TouchSlop        float64  `toml:"touch_slop"`
	SelectDelay      Duration `toml:"select_delay"`
	LongPressDelay   Duration `toml:"long_press_delay"`
	MinFlingVelocity float64  `toml:"min_fling_velocity"`
}

type TaskGroup struct {
	Id    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Gaming Life",
			Width:  540,
			Height: 960,
		},

		Interaction: Interaction{
			InflatePct:        10,
			Vibrate:           Duration{100 * time.Millisecond},
			LongPressTimeout:  Duration{2 * time.Second},
			LongPressInterval: Duration{100 * time.Millisecond},
			AbandonDistance:   5,
		},

		Gesture: Gesture{
			TouchSlop:        8,
			SelectDelay:      Duration{300 * time.Millisecond},
			LongPressDelay:   Duration{600 * time.Millisecond},
			MinFlingVelocity: 800,
		},

		Groups: []TaskGroup{
			{Id: GroupIdRelax, Name: "Relax", Color: "#BBDEFB"},
			{Id: GroupIdEnjoy, Name: "Enjoy", Color: "#FBBC05"},
			{Id: GroupIdLife, Name: "Life", Color: "#34A853"},
			{Id: GroupIdWork, Name: "Work", Color: "#EA4335"},
			{Id: GroupIdStudy, Name: "Study", Color: "#F9A825"},
			{Id: GroupIdCreate, Name: "Create", Color: "#4485F4"},
		},
	}
}

// Load reads the configuration file at path on top of the defaults. An empty
// path yields the defaults, a named file must exist.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	fp, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}

	defer fp.Close()

	config, err := Decode(fp)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}

	return config, nil
}

// Decode parses a toml document on top of the defaults and validates the
// result. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	config := Default()

	// groups in the document replace the default groups
	var groups struct {
		Groups []TaskGroup `toml:"group"`
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	meta, err := toml.Decode(string(data), &config)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("group") {
		if _, err := toml.Decode(string(data), &groups); err != nil {
			return Config{}, fmt.Errorf("decode groups: %w", err)
		}

		config.Groups = groups.Groups
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Encode writes the configuration as a toml document.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Interaction.InflatePct < 0 {
		errs = append(errs, fmt.Errorf("interaction.inflate_pct must not be negative"))
	}

	if c.Interaction.LongPressTimeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("interaction.long_press_timeout must be positive"))
	}

	if c.Interaction.LongPressInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("interaction.long_press_interval must be positive"))
	}

	if c.Interaction.AbandonDistance <= 0 {
		errs = append(errs, fmt.Errorf("interaction.abandon_distance must be positive"))
	}

	if c.Gesture.TouchSlop < 0 {
		errs = append(errs, fmt.Errorf("gesture.touch_slop must not be negative"))
	}

	if c.Gesture.SelectDelay.Duration <= 0 || c.Gesture.LongPressDelay.Duration <= 0 {
		errs = append(errs, fmt.Errorf("gesture delays must be positive"))
	}

	if len(c.Groups) == 0 {
		errs = append(errs, fmt.Errorf("at least one task group is required"))
	}

	seen := map[string]bool{}
	for _, group := range c.Groups {
		if group.Id == "" {
			errs = append(errs, fmt.Errorf("task group %q has no id", group.Name))
			continue
		}

		if seen[group.Id] {
			errs = append(errs, fmt.Errorf("duplicate task group %q", group.Id))
		}

		seen[group.Id] = true

		if _, err := graph.ParseHexColor(group.Color); err != nil {
			errs = append(errs, fmt.Errorf("task group %q: %w", group.Id, err))
		}
	}

	return errors.Join(errs...)
}

// Group returns the task group with the given id.
func (c Config) Group(id string) (TaskGroup, bool) {
	for _, group := range c.Groups {
		if group.Id == id {
			return group, true
		}
	}

	return TaskGroup{}, false
}

func (i Interaction) Settings() graph.Settings {
	return graph.Settings{
		InflatePct:        i.InflatePct,
		VibrateDuration:   i.Vibrate.Duration,
		LongPressTimeout:  i.LongPressTimeout.Duration,
		LongPressInterval: i.LongPressInterval.Duration,
	}
}

func (g Gesture) Settings() gesture.Settings {
	return gesture.Settings{
		TouchSlop:        g.TouchSlop,
		SelectDelay:      g.SelectDelay.Duration,
		LongPressDelay:   g.LongPressDelay.Duration,
		MinFlingVelocity: g.MinFlingVelocity,
	}
}
