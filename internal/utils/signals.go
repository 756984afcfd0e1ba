package utils

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// HoldSignals catches interrupt and termination signals so they no longer
// kill this process while a child that shares the terminal handles them.
// Call the returned function once the child has exited.
func HoldSignals() (release func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				logrus.Debugf("Received %s, waiting for child to exit", sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
