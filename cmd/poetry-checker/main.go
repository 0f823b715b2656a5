// Command poetry-checker validates poems against named poetry forms.
package main

import (
	"os"

	"github.com/Krithik-Kesh/Poetry-Checker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
