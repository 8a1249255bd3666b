package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/setanarut/img2se"
)

// Config controls a conversion run of the command line tool.
type Config struct {
	Block      string            `yaml:"block"`
	Custom     []CustomBlockSpec `yaml:"custom_blocks,omitempty"`
	OutputDir  string            `yaml:"output_dir"`
	Precision  int               `yaml:"precision"`
	Resampling string            `yaml:"resampling"`
	Workers    int               `yaml:"workers"`
	Palette    PaletteSpec       `yaml:"palette"`
}

// CustomBlockSpec declares a block type that is not built in.
type CustomBlockSpec struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Scale  int    `yaml:"scale"`
	TypeID string `yaml:"type_id"`
}

// PaletteSpec enables color quantization when Colors > 0.
type PaletteSpec struct {
	Colors int    `yaml:"colors"`
	Method string `yaml:"method"`
}

// Load reads a YAML config. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		Block:      img2se.Detailing.Key,
		Precision:  img2se.DefaultPrecision,
		Resampling: string(img2se.ResampleCubic),
		Palette:    PaletteSpec{Method: img2se.PaletteDominant.String()},
	}
}

func (c *Config) Normalize() {
	c.Block = strings.ToLower(strings.TrimSpace(c.Block))
	if c.Block == "" {
		c.Block = img2se.Detailing.Key
	}
	c.Resampling = strings.ToLower(strings.TrimSpace(c.Resampling))
	if c.Resampling == "" {
		c.Resampling = string(img2se.ResampleCubic)
	}
	c.Palette.Method = strings.ToLower(strings.TrimSpace(c.Palette.Method))
	for i := range c.Custom {
		c.Custom[i].Key = strings.ToLower(strings.TrimSpace(c.Custom[i].Key))
	}
}

func (c Config) Validate() error {
	if !img2se.Resampling(c.Resampling).Valid() {
		return fmt.Errorf("unknown resampling %q", c.Resampling)
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	if c.Palette.Colors < 0 {
		return errors.New("palette.colors must be >= 0")
	}
	if _, err := img2se.ParsePaletteMethod(c.Palette.Method); err != nil {
		return err
	}
	for _, cb := range c.Custom {
		if _, err := cb.BlockSize(); err != nil {
			return err
		}
	}
	if _, err := c.BlockSize(); err != nil {
		return err
	}
	return nil
}

// BlockSize converts the declaration to a preset.
func (s CustomBlockSpec) BlockSize() (img2se.BlockSize, error) {
	if s.Key == "" {
		return img2se.BlockSize{}, errors.New("custom block: missing key")
	}
	if s.Scale <= 0 {
		return img2se.BlockSize{}, fmt.Errorf("custom block %s: scale must be > 0", s.Key)
	}
	id, err := uuid.Parse(s.TypeID)
	if err != nil {
		return img2se.BlockSize{}, fmt.Errorf("custom block %s: type_id: %w", s.Key, err)
	}
	name := s.Name
	if name == "" {
		name = s.Key
	}
	return img2se.BlockSize{Key: s.Key, Name: name, Scale: s.Scale, TypeID: id}, nil
}

// BlockSize resolves Block against custom blocks first, then built-in presets.
func (c Config) BlockSize() (img2se.BlockSize, error) {
	for _, cb := range c.Custom {
		if strings.EqualFold(cb.Key, c.Block) {
			return cb.BlockSize()
		}
	}
	if b, ok := img2se.PresetByName(c.Block); ok {
		return b, nil
	}
	return img2se.BlockSize{}, fmt.Errorf("unknown block %q", c.Block)
}
