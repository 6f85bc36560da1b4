package main

import "multidrop/cmd"

func main() {
	cmd.Execute()
}
