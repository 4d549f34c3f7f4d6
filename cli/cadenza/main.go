package main

import (
	"os"

	cadenzacmder "github.com/cadenzahq/cadenza/cmd/cadenza"
)

func main() {
	cmd := cadenzacmder.NewCadenzaCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
