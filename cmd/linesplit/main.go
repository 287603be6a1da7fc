// linesplit - Line Classification Tool
//
// linesplit reads text files and sorts every line into integers, floats and
// strings, with optional exact statistics for each category.
package main

import (
	"os"

	"github.com/ccollicutt/linesplit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
