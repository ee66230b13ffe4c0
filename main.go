package main

import "github.com/dotcommander/mqa/cmd"

func main() {
	cmd.Execute()
}
