package main

import "shortener-be/cmd"

func main() {
	cmd.Execute()
}
