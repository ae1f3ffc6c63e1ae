// Command flowcanvas inspects and exports persisted canvas projects.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
