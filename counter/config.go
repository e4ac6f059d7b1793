package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned when a Config fails validation
var ErrInvalidConfig = errors.New("invalid counter config")

// DefaultLineWidth is the drawing line width used when none is configured
const DefaultLineWidth = 2

// maxConfigSize is the largest config file LoadConfig will read
const maxConfigSize = 1 * 1024 * 1024

// Config holds the user settings of a counting session
type Config struct {
	// Region is the list of [x,y] points of the counting boundary
	Region [][2]float64 `json:"region"`
	// ShowIn and ShowOut control which directions appear in the rendered
	// count labels, both default to true when omitted
	ShowIn  *bool `json:"show_in,omitempty"`
	ShowOut *bool `json:"show_out,omitempty"`
	// LineWidth is the thickness used to draw boxes, the region is drawn
	// at twice this width
	LineWidth int `json:"line_width,omitempty"`
	// RegionMargin grows (positive) or shrinks (negative) a polygon region
	// by this many pixels
	RegionMargin float64 `json:"region_margin,omitempty"`
}

// DefaultConfig returns a Config with counting disabled and both directions
// shown
func DefaultConfig() Config {
	return Config{
		LineWidth: DefaultLineWidth,
	}
}

// LoadConfig loads a Config from a JSON file.  Fields omitted from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}

	if fileInfo.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)",
			fileInfo.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the config values.  A region with fewer than two points is
// valid and disables counting.
func (c Config) Validate() error {

	if c.LineWidth < 0 {
		return fmt.Errorf("%w: line_width cannot be negative, got %d",
			ErrInvalidConfig, c.LineWidth)
	}

	for i, pt := range c.Region {
		for _, v := range pt {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: region point %d is not finite",
					ErrInvalidConfig, i)
			}
		}
	}

	if math.IsNaN(c.RegionMargin) || math.IsInf(c.RegionMargin, 0) {
		return fmt.Errorf("%w: region_margin is not finite", ErrInvalidConfig)
	}

	return nil
}

// Points returns the configured region as a Region
func (c Config) Points() Region {

	if len(c.Region) == 0 {
		return nil
	}

	r := make(Region, 0, len(c.Region))

	for _, pt := range c.Region {
		r = append(r, Point{X: pt[0], Y: pt[1]})
	}

	return r
}

// ShowInLabel reports whether In counts are rendered
func (c Config) ShowInLabel() bool {
	return c.ShowIn == nil || *c.ShowIn
}

// ShowOutLabel reports whether Out counts are rendered
func (c Config) ShowOutLabel() bool {
	return c.ShowOut == nil || *c.ShowOut
}

// Width returns the configured line width or DefaultLineWidth when unset
func (c Config) Width() int {
	if c.LineWidth == 0 {
		return DefaultLineWidth
	}
	return c.LineWidth
}

// ParseRegion parses a region given as semicolon separated x,y pairs, eg:
// "100,0;100,200"
func ParseRegion(s string) ([][2]float64, error) {

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var region [][2]float64

	for i, pair := range strings.Split(s, ";") {
		xy := strings.Split(strings.TrimSpace(pair), ",")

		if len(xy) != 2 {
			return nil, fmt.Errorf("region point %d %q is not an x,y pair", i, pair)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("region point %d x: %w", i, err)
		}

		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("region point %d y: %w", i, err)
		}

		region = append(region, [2]float64{x, y})
	}

	return region, nil
}
