package main

import (
	"CanvasPong/logger"
	"fmt"
	"os"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Echo = true
	start()
}
