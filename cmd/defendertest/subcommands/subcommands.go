package subcommands

import (
	"fmt"
	"sort"

	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
)

type Subcommand func(*context.Context, *config.Configuration, []string) int

var subcommands map[string]Subcommand = make(map[string]Subcommand)

func Register(command string, fn Subcommand) {
	subcommands[command] = fn
}

func Execute(ctx *context.Context, cfg *config.Configuration, command string, args []string) (int, error) {
	fn, exists := subcommands[command]
	if !exists {
		return 1, fmt.Errorf("unknown command: %s", command)
	}

	return fn(ctx, cfg, args), nil
}

func List() []string {
	var list []string
	for command := range subcommands {
		list = append(list, command)
	}
	sort.Strings(list)
	return list
}
