// radix decomposes words into Latin and Greek morphemes from the command line,
// reading the same static corpus files as the API service.
package main

import (
	"os"

	"github.com/radix-engine/backend/cmd/radix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
