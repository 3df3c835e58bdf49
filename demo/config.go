package main

import (
	"io"
	"os"
)

type Config struct {
	Capacity  int // capacity of the bounded structures
	LogWriter io.Writer
}

func DefaultConfig() Config {
	return Config{
		Capacity:  3,
		LogWriter: os.Stderr,
	}
}
