// Command thermocouple converts between thermocouple voltages and temperatures using the NIST
// ITS-90 reference functions.
//
//	thermocouple temp --type K --ref 25C 1.1mV
//	thermocouple volt --type J --ref 0C 100C
//	thermocouple table --type T --from -200 --to 400 --step 50
//	thermocouple verify --type K type_k.tab
package main

import (
	"os"

	"github.com/arloliu/go-thermocouple/logger"
)

func main() {
	if err := execute(newRootCommand(os.Stdout), os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
