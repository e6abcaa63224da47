package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(defaultBackend()).Execute(); err != nil {
		log.WithError(err).Error("credctl failed")
		os.Exit(1)
	}
}
