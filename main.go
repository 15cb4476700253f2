package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-cof/config"
	"go-cof/debug"
	"go-cof/midi"
	"go-cof/state"
	"go-cof/theme"
	"go-cof/theory"
	"go-cof/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/go-cof/config.json)")
	debugFlag := flag.Bool("debug", false, "write a debug log to ~/.config/go-cof/debug.log")
	palettePath := flag.String("palette", "", "GIMP .gpl palette file")
	noMIDI := flag.Bool("no-midi", false, "don't connect MIDI keyboards")
	writeCfg := flag.Bool("write-config", false, "write the effective config file and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *writeCfg {
		if err := writeConfig(cfg, *configPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *debugFlag || cfg.Debug {
		if logPath, err := config.LogPath(); err == nil {
			if err := debug.Enable(logPath); err != nil {
				fmt.Printf("Warning: debug log: %v\n", err)
			}
		}
	}
	if debug.Enabled() {
		defer debug.Disable()
	}

	// Load theme
	palette := theme.DefaultPalette()
	if *palettePath != "" {
		cfg.UI.PalettePath = *palettePath
	}
	if cfg.UI.PalettePath != "" {
		palette = theme.MustLoadGPL(cfg.UI.PalettePath)
	}
	th := theme.New(palette)

	store := state.New()

	// MIDI keyboards pick the tonic (handles hot-plug)
	var deviceMgr *midi.DeviceManager
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Keyboard.AutoConnect && !*noMIDI {
		deviceMgr = midi.NewDeviceManager(cfg.Keyboard.PortFilter)
		go deviceMgr.Run(ctx)
	}

	// Register every observer, then announce the default selection
	m := tui.NewModel(store, deviceMgr, th, cfg.UI.WheelRadius)
	store.AddObserver(func(sc state.StateChange) {
		debug.Log("main", "selection %s %s: %v", sc.Tonic, sc.Mode, sc.Scale)
	})
	store.ChangeTonic(theory.PitchClassAt(0))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig saves cfg to path, or to the default location if path is empty
func writeConfig(cfg *config.Config, path string) error {
	if path != "" {
		return cfg.SaveFile(path)
	}
	return cfg.Save()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
