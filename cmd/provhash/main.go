package main

import (
	"context"
	"fmt"
	"os"

	"github.com/provenlab/provhash/pkg/cli"
)

func main() {
	code, err := cli.Run(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "provhash:", err)
	}
	os.Exit(code)
}
