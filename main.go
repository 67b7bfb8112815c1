package main

import "github.com/Bitlatte/shadowlight/cmd"

func main() {
	cmd.Execute()
}
