package main

import "apilens/cmd"

func main() {
	cmd.Execute()
}
