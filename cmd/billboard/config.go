package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/callebjorkell/billboard/internal/billboard"
	"github.com/callebjorkell/billboard/internal/lcd"
	"github.com/callebjorkell/billboard/internal/neopixel"
	"github.com/callebjorkell/billboard/internal/render"
	"gopkg.in/yaml.v3"
)

const defaultDisplayDuration = 20 * time.Second

//go:embed billboard.yaml
var defaultConfig []byte

type Screen struct {
	Text     string        `yaml:"text"`
	Duration time.Duration `yaml:"duration"`
}

type Config struct {
	DisplayDuration time.Duration    `yaml:"displayDuration"`
	ScrollDelay     time.Duration    `yaml:"scrollDelay"`
	BlinkDelay      time.Duration    `yaml:"blinkDelay"`
	Welcome         []Screen         `yaml:"welcome"`
	Pins            lcd.PinNames     `yaml:"pins"`
	Leds            neopixel.Options `yaml:"leds"`

	billboard.Catalog `yaml:",inline"`
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.DisplayDuration <= 0 {
		c.DisplayDuration = defaultDisplayDuration
	}
	if c.ScrollDelay <= 0 {
		c.ScrollDelay = render.DefaultScrollDelay
	}
	if c.BlinkDelay <= 0 {
		c.BlinkDelay = render.DefaultBlinkDelay
	}
	if c.Pins == (lcd.PinNames{}) {
		c.Pins = lcd.DefaultPinNames
	}
	if c.Leds.Count <= 0 {
		c.Leds.Count = neopixel.DefaultOptions.Count
	}
	if c.Leds.Brightness <= 0 {
		c.Leds.Brightness = neopixel.DefaultOptions.Brightness
	}
	for i, s := range c.Welcome {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("duration of welcome screen must be specified for entry %d", i)
		}
	}

	if err := c.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return c, nil
}

// readConfig reads the configuration at path, or the built-in one when path is empty.
func readConfig(path string) (*Config, error) {
	if path == "" {
		return parseConfig(defaultConfig)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return parseConfig(content)
}
