// neo3dtool is a CLI utility for inspecting transforms, cameras and
// animation tracks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/neo3d/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "decompose", "dec":
		err = cmdDecompose(args, os.Stdout)
	case "invert", "inv":
		err = cmdInvert(args, os.Stdout)
	case "view":
		err = cmdView(args, os.Stdout)
	case "track":
		err = cmdTrack(args, os.Stdout)
	case "config":
		err = cmdConfig(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	logger.Sync()

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`neo3dtool - transform, camera and track utility

Usage:
  neo3dtool <command> [options]

Commands:
  decompose -m <values> [-2d]        Split a matrix into translation, rotation and scale
  invert -m <values>                 Invert a 2x2, 3x3 or 4x4 matrix
  view [-width W -height H]          Print the camera matrices from the config
  track <file> [-samples N]          Sample an animation track
  config [-toml] [-save path]        Print or save the effective config

Matrices are given column-major, comma or space separated.
Every command also accepts -config, -log-level, -format, -precision and -debug.

Examples:
  neo3dtool decompose -m "0,1,0,-1,0,0,0,0,1"
  neo3dtool invert -m "2 0 0 4" -format yaml
  neo3dtool view -config scene.yaml -width 1280 -height 720
  neo3dtool track door.yaml -samples 5`)
}
