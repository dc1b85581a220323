package main

import "github.com/shockbase/levelborder/internal/cli"

func main() {
	cli.Execute()
}
