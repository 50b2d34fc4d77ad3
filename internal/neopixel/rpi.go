//go:build pi

package neopixel

import (
	"fmt"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

// NewLedController initializes the WS281x ring on the default PWM channel.
func NewLedController(opt Options) (*LedController, error) {
	wsOpt := ws.DefaultOptions
	wsOpt.Channels[0].Brightness = opt.Brightness
	wsOpt.Channels[0].LedCount = opt.Count

	dev, err := ws.MakeWS2811(&wsOpt)
	if err != nil {
		return nil, fmt.Errorf("unable to create LED device: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize LED device: %w", err)
	}

	return &LedController{
		ws: dev,
	}, nil
}
