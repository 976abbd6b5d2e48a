package main

import (
	"fmt"
	"os"
	sys "os"
)

func run() int {
	os.Exit(3)

	return 0
}

func main() {
	fmt.Println("generating")

	defer func() {
		os.Exit(run())
	}()

	os.Exit(1)  // want "calling os.Exit in main package is not allowed"
	sys.Exit(2) // want "calling os.Exit in main package is not allowed"
}
