// Cube scanner - CLI application for scanning Rubik's cubes with the camera rig.
package main

import (
	"github.com/SeamusWaldron/cubescan/internal/cli"
)

func main() {
	cli.Execute()
}
