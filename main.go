package main

import "github.com/RyanBlaney/mixcheck/cmd"

func main() {
	cmd.Execute()
}
