package app

import (
	"flag"
	"strconv"
	"strings"

	"edge-life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Seed       int64
	Pattern    string
	ConfigFile string
	HUDWidth   int
	Invert     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:      "life",
		Width:    def.Width,
		Height:   def.Height,
		Scale:    2,
		TPS:      60,
		Seed:     def.Seed,
		Pattern:  def.Pattern,
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, patternUsage())
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with width, height, seed and pattern")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "stats panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "swap alive and dead colors in the terminal")
}

// SimParams builds the factory parameters for the selected sim. Values from
// the config file take precedence over flag defaults, and flags set on the
// command line take precedence over the file.
func (c *Config) SimParams(fs *flag.FlagSet) (map[string]string, error) {
	base := life.DefaultConfig()
	if c.ConfigFile != "" {
		loaded, err := life.LoadConfig(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	params := base.ToMap()

	set := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	override := func(name, value string) {
		if c.ConfigFile == "" || set[name] {
			params[name] = value
		}
	}
	override("w", strconv.Itoa(c.Width))
	override("h", strconv.Itoa(c.Height))
	override("seed", strconv.FormatInt(c.Seed, 10))
	override("pattern", c.Pattern)
	return params, nil
}

func patternUsage() string {
	names := append([]string{life.PatternRandom}, life.PatternNames()...)
	return "initial pattern (" + strings.Join(names, ", ") + ")"
}
