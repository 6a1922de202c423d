package main

import (
	"github.com/c9s/fcoin/pkg/cmd"
)

func main() {
	cmd.Execute()
}
