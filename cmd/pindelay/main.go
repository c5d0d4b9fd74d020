package main

import (
	"github.com/OpenTraceLab/pindelay/cmd/pindelay/cmd"
)

func main() {
	cmd.Execute()
}
