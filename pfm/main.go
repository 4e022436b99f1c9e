package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/asaladino/fifo/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: exits early when invoked by the shell's completer.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":       {Flags: map[string]complete.Predictor{"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"sell":      {Flags: map[string]complete.Predictor{"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"drip":      {Flags: map[string]complete.Predictor{"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"reward":    {Flags: map[string]complete.Predictor{"s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"positions": {Flags: map[string]complete.Predictor{"class": predict.Set{"equity", "crypto"}, "c": predict.Nothing}},
			"import":    {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
	completion.Complete("pfm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
