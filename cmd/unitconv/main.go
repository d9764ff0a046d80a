// Command unitconv converts values between measurement units.
package main

import "github.com/mesh-intelligence/unitconv/internal/cli"

func main() {
	cli.Execute()
}
