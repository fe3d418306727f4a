// ABOUTME: Entry point for the tuneloop terminal audio player
// ABOUTME: Hands control to the cobra command tree
package main

import "github.com/harperreed/tuneloop/internal/cli"

func main() {
	cli.Execute()
}
