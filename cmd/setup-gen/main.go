// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command setup-gen runs the one-shot trusted-dealer simulation described
// by spec §6 and writes its four artifacts ("<n>_<t>cfg/pks/sks/cms") to a
// configs directory. Usage: setup-gen [--out dir] <N> [t]. The --out flag
// must precede the positional arguments.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/DimitrisPapac/GRandLine/curve"
	"github.com/DimitrisPapac/GRandLine/setup"
)

func main() {
	outDir := flag.String("out", "configs", "directory to write the setup artifacts into")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: setup-gen [--out dir] <num_participants> [num_faults]")
		os.Exit(1)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "setup-gen: invalid num_participants %q\n", args[0])
		os.Exit(1)
	}

	t := n/2 - 1
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed < 0 {
			fmt.Fprintf(os.Stderr, "setup-gen: invalid num_faults %q\n", args[1])
			os.Exit(1)
		}
		t = parsed
	}

	engine, err := curve.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup-gen: %s\n", err)
		os.Exit(1)
	}

	artifacts, err := setup.Generate(engine, curve.BLS12381, n, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup-gen: generate artifacts: %s\n", err)
		os.Exit(1)
	}

	if err := setup.WriteArtifacts(engine, *outDir, artifacts); err != nil {
		fmt.Fprintf(os.Stderr, "setup-gen: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote setup artifacts for N=%d, t=%d to %s\n", n, t, *outDir)
}
