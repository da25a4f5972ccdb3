package main

import (
	"os"

	"github.com/wellnest/wellnest/wellnestservice"
)

func main() {
	if err := wellnestservice.Run(); err != nil {
		os.Exit(1)
	}
}
