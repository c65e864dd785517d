package main

import "github.com/sivaosorg/termlog/internal/cli"

func main() {
	cli.Execute()
}
