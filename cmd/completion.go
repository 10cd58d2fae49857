package cmd

import (
	"flag"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the subcommands registered in c.
//
// Pass it to complete.Complete before parsing the flags: it answers the shell
// and exits when the program runs as a completion script.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictFlag("", f) })

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(exportExt(cmd), f) })
		switch cmd.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		case "help":
			sub.Args = predict.Set(commandNames(c))
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// exportExt returns the extension of the export read by cmd, if any.
func exportExt(cmd subcommands.Command) string {
	if e, ok := cmd.(interface{ exportExt() string }); ok {
		return e.exportExt()
	}
	return ""
}

func (e *exportFlags) exportExt() string { return e.ext }

func predictFlag(ext string, f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "f":
		return predict.Files("*" + ext)
	case "p":
		var periods []string
		for p := tradestats.Daily; p <= tradestats.Yearly; p++ {
			periods = append(periods, p.String())
		}
		return predict.Set(periods)
	case "c":
		var categories []string
		for _, c := range tradestats.Categories {
			categories = append(categories, c.String())
		}
		return predict.Set(categories)
	}
	return predict.Something
}

func commandNames(c *subcommands.Commander) []string {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())
	})
	return names
}
