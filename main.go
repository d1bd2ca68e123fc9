package main

import "github.com/rivethealth/prettier/cmd"

func main() {
	cmd.Execute()
}
