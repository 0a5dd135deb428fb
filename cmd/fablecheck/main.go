// Package main provides fablecheck, a validator for world scripts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/astokes/fable/internal/game/world"
)

func main() {
	worldPath := flag.String("world", "", "path to world script")
	dumpPath := flag.String("dump", "", `write the resolved world as YAML to this path ("-" for stdout)`)
	flag.Parse()

	if *worldPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fablecheck -world <script> [-dump <file>]")
		os.Exit(1)
	}

	start := time.Now()
	w, err := world.Load(*worldPath)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d rooms, %d actions, %d dialogues) in %s\n",
		*worldPath, len(w.Rooms), len(w.Actions), len(w.Dialogues),
		time.Since(start).Round(time.Millisecond))

	if *dumpPath != "" {
		if err := dump(w, *dumpPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// report prints the validation failure. Aggregated reference errors get one
// line per missing entity so script authors can fix them in a single pass.
func report(err error) {
	var missing *world.MissingEntitiesError
	if errors.As(err, &missing) {
		fmt.Fprintln(os.Stderr, "error: references to entities that do not exist:")
		for _, id := range missing.Dialogues {
			fmt.Fprintf(os.Stderr, "  dialogue %q\n", id)
		}
		for _, id := range missing.Actions {
			fmt.Fprintf(os.Stderr, "  action %q\n", id)
		}
		for _, id := range missing.Rooms {
			fmt.Fprintf(os.Stderr, "  room %q\n", id)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func dump(w *world.World, path string) error {
	data, err := yaml.Marshal(newWorldDump(w))
	if err != nil {
		return fmt.Errorf("marshalling world: %w", err)
	}
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}
