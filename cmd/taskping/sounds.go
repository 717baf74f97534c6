package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/taskping/taskping/internal/config"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List system sounds usable as notification sounds",
	Long: `List the sound files under the system sounds directory. Any name
shown here can be set via TASKPING_START_SOUND, TASKPING_COMPLETE_SOUND,
or the config file.`,
	RunE: runSounds,
}

func init() {
	rootCmd.AddCommand(soundsCmd)
}

func runSounds(cmd *cobra.Command, args []string) error {
	entries, err := os.ReadDir(config.SystemSoundsDir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", config.SystemSoundsDir, err)
	}

	resolver := newResolver()
	res := resolver.Resources()

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(config.SystemSoundsDir, name)
		size := ""
		if info, err := os.Stat(path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}

		marker := " "
		switch path {
		case res.StartSound:
			marker = "S"
		case res.CompleteSound:
			marker = "C"
		}

		fmt.Printf("%s %-24s %s\n", marker, name, size)
	}

	if len(names) > 0 {
		fmt.Println("\nS = current start sound, C = current completion sound")
	}
	return nil
}
