package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/callebjorkell/billboard/internal/billboard"
	"github.com/callebjorkell/billboard/internal/clock"
	"github.com/callebjorkell/billboard/internal/lcd"
	"github.com/callebjorkell/billboard/internal/neopixel"
	"github.com/callebjorkell/billboard/internal/render"
	log "github.com/sirupsen/logrus"
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func startBillboard(conf *Config, seed int64) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := clock.NewTicker(context.Background())
	defer ticker.Stop()

	display, err := lcd.Open(conf.Pins, ticker)
	if err != nil {
		log.Fatal(err)
	}

	led, err := neopixel.NewLedController(conf.Leds)
	if err != nil {
		log.Fatal(err)
	}
	defer led.Close()

	r := render.New(display, ticker)
	r.ScrollDelay = conf.ScrollDelay
	r.BlinkDelay = conf.BlinkDelay

	log.Infof("Billboard started with %d customers and %d messages (seed %d)", len(conf.Customers), len(conf.Messages), seed)
	selector := billboard.NewSelector(&conf.Catalog, rand.New(rand.NewSource(seed)))

	colors := make([]uint32, 0, len(conf.Customers))
	for _, c := range conf.Customers {
		colors = append(colors, c.Color)
	}
	go led.Welcome(colors)
	for _, s := range conf.Welcome {
		r.Static(s.Text)
		ticker.Sleep(s.Duration)
	}
	led.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		rotate(ctx, selector, r, led, conf.DisplayDuration)
	}()

	stopOnSignal(signalChan, cancel, done)

	r.Static("  Sleeping...")
	log.Info("Done...")
}

// stopOnSignal waits until rotation is done. The first signal cancels it after the current message, and
// hands any further signal back to the default handler so a second Ctrl-C exits right away.
func stopOnSignal(signals chan os.Signal, cancel context.CancelFunc, done <-chan struct{}) {
	defer cancel()
	select {
	case <-signals:
		signal.Stop(signals)
		log.Info("Stopping after the current message...")
		cancel()
	case <-done:
	}
	<-done
}

func rotate(ctx context.Context, s *billboard.Selector, r *render.Renderer, led *neopixel.LedController, d time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		customer, m := s.Next()
		log.Infof("Next up: %s (%d kr)", customer.Name, customer.Payment)
		led.Breathe(customer.Color)
		r.Show(m, d)
		led.Stop()
		s.Shown(customer)
		log.Debugf("Shown %d messages", s.Counter())
	}
}

// preview renders m on a simulated display without waiting and returns every frame drawn.
func preview(m billboard.Message, d time.Duration) []string {
	f := clock.NewFake(0)
	display, c := lcd.Simulated(f)
	display.Initialize()
	c.Reset()

	render.New(display, f).Show(m, d)

	frames := c.Frames()
	if len(frames) > 0 {
		// the first clear captured the blank screen left by initialization
		frames = frames[1:]
	}
	frames = append(frames, c.Screen())

	border := "+" + strings.Repeat("-", lcd.Width) + "+"
	out := make([]string, 0, len(frames))
	for _, frame := range frames {
		cells := []rune(frame)
		top, bottom := string(cells[:lcd.Width]), string(cells[lcd.Width+1:])
		out = append(out, fmt.Sprintf("%s\n|%s|\n|%s|\n%s", border, top, bottom, border))
	}
	return out
}
