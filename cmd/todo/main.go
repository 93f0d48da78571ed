package main

import (
	"fmt"
	"os"

	rootcmd "github.com/Makepad-fr/tada/cmd/todo/root"
)

func main() {
	if err := rootcmd.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
