package main

import "seriestidy/internal/cmd"

func main() {
	cmd.Execute()
}
