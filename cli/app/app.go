// Package app contains the hashtrie CLI application assembly.
package app

import (
	"os"

	"github.com/trieworks/hashtrie/cli/tree"
	"github.com/urfave/cli/v2"
)

// New creates a hashtrie instance of [cli.App] with all commands included.
func New() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "hashtrie"
	ctl.Usage = "Hashed prefix trie toolkit"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, tree.NewCommands()...)
	return ctl
}
