package main

import "github.com/sensorstack/sensorstack/pkg/cli"

func main() {
	cli.Main()
}
