package main

import "github.com/OpenTraceLab/vinst/cmd/vinst/cmd"

func main() {
	cmd.Execute()
}
