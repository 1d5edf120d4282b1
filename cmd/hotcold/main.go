package main

import (
	"github.com/mjessup/hotcold/internal/cli"
)

func main() {
	cli.Execute()
}
