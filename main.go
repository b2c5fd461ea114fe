// Recordar - a note and reminder keeper with scheduled notifications.

package main

import (
	"os"

	"recordar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
