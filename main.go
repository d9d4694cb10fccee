package main

import "blog/internal/commands"

func main() {
	commands.Execute()
}
