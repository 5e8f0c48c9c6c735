package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-formbuilder/pkg/logger"
)

func main() {
	defer logger.Sync()

	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
