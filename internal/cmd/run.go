package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/padmux/padmux/gpio"
	"github.com/padmux/padmux/internal/log"
	"github.com/padmux/padmux/nsgadget"
	"github.com/padmux/padmux/pad"
	"github.com/padmux/padmux/registry"
	"github.com/padmux/padmux/speech"
)

// Run aggregates every attached controller into one virtual gamepad on
// the NSGadget serial link.
type Run struct {
	Port      string `help:"NSGadget serial port (probes /dev/ttyAMA0 then /dev/ttyUSB0 when empty)" env:"PADMUX_PORT"`
	Baud      int    `help:"Serial baud rate" default:"2000000" env:"PADMUX_BAUD"`
	DeviceDir string `help:"Directory scanned for joystick device nodes" default:"/dev/input" env:"PADMUX_DEVICE_DIR"`
	Gpio      bool   `help:"Read panel buttons wired to GPIO pins" env:"PADMUX_GPIO"`
	GpioChip  string `help:"GPIO character device" default:"gpiochip0" env:"PADMUX_GPIO_CHIP"`
	Speech    bool   `help:"Read spoken command phrases from standard input" env:"PADMUX_SPEECH"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.StartMux(ctx, logger, rawLogger)
}

// StartMux wires the sources to the gadget and blocks until ctx is
// done. The gadget link is the only fatal dependency; controllers,
// the GPIO panel and speech input come and go while it runs.
func (r *Run) StartMux(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	port, err := nsgadget.Open(r.Port, r.Baud, logger)
	if err != nil {
		return fmt.Errorf("failed to open NSGadget link: %w", err)
	}
	defer port.Close()

	mux := pad.NewMux(nsgadget.NewEncoder(port, rawLogger), logger)
	mux.Reset()

	reg := registry.New(r.DeviceDir, mux, logger)
	go reg.Run(ctx)

	if r.Gpio {
		panel, err := gpio.New(r.GpioChip, mux, logger)
		if err != nil {
			return fmt.Errorf("failed to attach GPIO panel: %w", err)
		}
		defer panel.Close()
	}

	if r.Speech {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Info("Speech input is a terminal, type phrases followed by enter")
		}
		go func() {
			if err := speech.New(os.Stdin, mux, logger).Run(ctx); err != nil {
				logger.Warn("Speech input stopped", "error", err)
			}
		}()
	}

	logger.Info("padmux running", "device_dir", r.DeviceDir)
	<-ctx.Done()

	// Leave the console with everything released.
	mux.Reset()
	return nil
}
