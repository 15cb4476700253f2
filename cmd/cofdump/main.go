package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-cof/midi"
	"go-cof/theory"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "circle":
		printCircle()
	case "scales":
		err = printScales(os.Args[2:])
	case "ports":
		listPorts()
	default:
		usage()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Circle of fifths tools")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  circle         - Print the circle of fifths")
	fmt.Println("  scales [mode]  - Print every tonic's scale (all modes if none given)")
	fmt.Println("  ports          - List MIDI input ports")
}

func printCircle() {
	var names []string
	for _, pc := range theory.CircleOfFifths() {
		names = append(names, pc.Name)
	}
	fmt.Println(strings.Join(names, " "))
}

func printScales(args []string) error {
	modes := theory.Modes[:]
	if len(args) > 0 {
		m, err := theory.ParseMode(strings.Join(args, " "))
		if err != nil {
			return err
		}
		modes = []theory.Mode{m}
	}

	for _, mode := range modes {
		fmt.Printf("=== %s %v ===\n", mode.Name, theory.Intervals(mode))
		for _, tonic := range theory.CircleOfFifths() {
			fmt.Println(formatScale(theory.ScaleOf(tonic, mode)))
		}
		fmt.Println()
	}
	return nil
}

func formatScale(s theory.Scale) string {
	var b strings.Builder
	for i, pc := range s {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s:%-2s", theory.DegreeName(i), pc.Name)
	}
	return b.String()
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ch := make(chan []string, 1)
	go func() {
		ch <- midi.InPortNames()
	}()

	select {
	case names := <-ch:
		for i, name := range names {
			fmt.Printf("  %d: %s\n", i, name)
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! The MIDI driver is hung.")
	}
}
