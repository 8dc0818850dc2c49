package main

import "github.com/freeeve/grid-getters/cmd/hexwar/cmd"

func main() {
	cmd.Execute()
}
