// This program inspects the block sizing model and evaluates parameter
// bundles against it.
package main

import "github.com/ardanlabs/blocksizing/app/tooling/blockmodel/cmd"

func main() {
	cmd.Execute()
}
