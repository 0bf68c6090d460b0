// fxprov is a tool for command-line provisioning of the FX rates platform.
package main

import (
	"github.com/fxrates/fxprov/cmd"
)

func main() {
	cmd.Run()
}
