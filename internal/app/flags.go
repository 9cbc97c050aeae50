package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExportConfig selects the files written by headless runs.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	CSV    bool   `yaml:"csv"`
	PNG    bool   `yaml:"png"`
	GIF    bool   `yaml:"gif"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Scale enlarges GIF frames.
	Scale int `yaml:"scale"`
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string            `yaml:"sim"`
	Scale  int               `yaml:"scale"`
	TPS    int               `yaml:"tps"`
	Seed   int64             `yaml:"seed"`
	Params map[string]string `yaml:"params"`
	Export ExportConfig      `yaml:"export"`

	file string
	sets kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "life",
		Scale:  3,
		TPS:    60,
		Seed:   42,
		Params: map[string]string{},
		Export: ExportConfig{Dir: ".", Scale: 1},
	}
}

// Bind attaches the flags shared by every tool to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "config", "", "YAML configuration file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.sets, "set", "sim parameter override in key=value form (repeatable)")
}

// BindRun attaches the sim selection and pacing flags.
func (c *Config) BindRun(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// BindExport attaches the export selection flags used by headless tools.
func (c *Config) BindExport(fs *flag.FlagSet) {
	fs.StringVar(&c.Export.Dir, "out", c.Export.Dir, "export directory")
	fs.BoolVar(&c.Export.CSV, "csv", c.Export.CSV, "write CSV files")
	fs.BoolVar(&c.Export.PNG, "png", c.Export.PNG, "write PNG files")
	fs.BoolVar(&c.Export.GIF, "gif", c.Export.GIF, "write an animated GIF of all pages")
	fs.IntVar(&c.Export.Width, "resize-w", c.Export.Width, "resize PNG exports to this width")
	fs.IntVar(&c.Export.Height, "resize-h", c.Export.Height, "resize PNG exports to this height")
	fs.IntVar(&c.Export.Scale, "gif-scale", c.Export.Scale, "GIF pixels per cell")
}

// Resolve layers the configuration file under the parsed flags. Values from
// flags set explicitly on fs win over the file; -set entries win over both.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.file != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) {
			if f.Name != "config" && f.Name != "set" {
				explicit[f.Name] = f.Value.String()
			}
		})
		if err := c.LoadFile(c.file); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return fmt.Errorf("app: restoring -%s: %w", name, err)
			}
		}
	}
	for _, kv := range c.sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("app: -set %q is not key=value", kv)
		}
		c.Params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if _, ok := c.Params["seed"]; !ok {
		c.Params["seed"] = fmt.Sprint(c.Seed)
	}
	return nil
}

// LoadFile decodes a YAML configuration over the current values.
func (c *Config) LoadFile(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: reading configuration: %w", err)
	}
	params := c.Params
	if params == nil {
		params = map[string]string{}
	}
	if err := yaml.Unmarshal(body, c); err != nil {
		return fmt.Errorf("app: decoding configuration YAML: %w", err)
	}
	// Merge rather than replace so earlier params survive a partial file.
	for k, v := range c.Params {
		params[k] = v
	}
	c.Params = params
	return nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
