// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/stackproc/config"
	"github.com/ezrec/stackproc/emulator"
	"github.com/ezrec/stackproc/monitor"
	"github.com/ezrec/stackproc/translate"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %v [options] [program.sm [cmd1 cmd2 ...]]\n", os.Args[0])
	fmt.Fprintf(out, "\tStarts the stack processor emulator. Optionally, a program can\n")
	fmt.Fprintf(out, "\tbe loaded into the emulator. If a program is loaded then one or\n")
	fmt.Fprintf(out, "\tmore instructions can also be specified on the command-line for\n")
	fmt.Fprintf(out, "\texecution.\n\n")
	flag.PrintDefaults()
}

func main() {
	var configPath string
	var verbose bool
	var stepLimit int
	var preview int

	flag.StringVar(&configPath, "config", "", "configuration file (default: search for "+config.FILENAME+")")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&stepLimit, "n", -1, "Maximum instructions per CALL, 0 for no limit")
	flag.IntVar(&preview, "p", -1, "Stack entries shown in the state")
	flag.Usage = usage

	flag.Parse()

	var conf *config.Config
	var err error
	if len(configPath) != 0 {
		conf, err = config.Load(configPath)
	} else {
		conf, err = config.FindAndLoad(".")
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if len(conf.Language) != 0 {
		err = translate.SetLanguage(conf.Language)
		if err != nil {
			log.Fatalf("%v: language %v: %v", conf.Path, conf.Language, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = conf.Verbose || verbose
	emu.StepLimit = conf.StepLimit
	if stepLimit >= 0 {
		emu.StepLimit = stepLimit
	}
	emu.Preview = conf.Preview
	if preview >= 0 {
		emu.Preview = preview
	}

	mon := monitor.NewMonitor(emu, os.Stdout)
	mon.Prompt = conf.Prompt

	translate.Fprintf(os.Stdout, "Welcome to the stack processor.\n\n")
	mon.PrintState()

	if flag.NArg() == 0 {
		err = mon.Serve(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	program := flag.Arg(0)
	info, err := os.Stat(program)
	if err != nil || info.IsDir() {
		log.Printf("ERROR:  %v is not a file", program)
		flag.Usage()
		os.Exit(1)
	}

	// Commands on the command line are run, and then we exit.
	commands := flag.Args()[1:]
	mon.Batch(program, commands)
	if len(commands) != 0 {
		return
	}

	err = mon.Serve(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
}
