package main

import (
	"os"

	"github.com/dennoAiden/swiper-venture/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
