package main

import "github.com/savyasachi6969/gemchat/cmd"

func main() {
	cmd.Execute()
}
