package main

import "optimize-img/cmd"

func main() {
	cmd.Execute()
}
