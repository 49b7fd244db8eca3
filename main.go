package main

import "flutter-gen-builder/cmd"

func main() {
	cmd.Execute()
}
