package main

import (
	"github.com/labstack/gommon/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
