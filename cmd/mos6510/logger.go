package main

import (
	"log"
	"os"
)

func newStdoutLogger() *log.Logger {
	return log.New(os.Stdout, "", 0)
}
