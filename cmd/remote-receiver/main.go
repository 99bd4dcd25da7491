// remote-receiver turns command codes sent by an ESP32 remote over Bluetooth Low Energy into
// volume, media and window-management keystrokes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/esp32remote/receiver/internal/log"
	"github.com/esp32remote/receiver/pkg/cli"
	"github.com/esp32remote/receiver/pkg/dispatch"
	"github.com/esp32remote/receiver/pkg/session"
)

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	config, err := cli.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		return
	}
	config.RegisterCommandLineFlags()
	flag.Parse()
	config.ReadFromEnvironment()
	log.SetLevel(config.LogLevel())

	opener, err := config.NewAdapterOpener()
	if err != nil {
		log.Error("%s", err)
		return
	}

	manager := session.NewManager(opener, dispatch.New(config.NewActuator()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	go func() {
		<-signalChan
		log.Info("Interrupted, shutting down")
		cancel()
	}()

	log.Info("Waiting for %s using the %s backend", manager.Identity.Name, config.Backend())
	if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("%s", err)
		return
	}
	status = 0
}
