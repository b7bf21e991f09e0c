package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"xdf/internal/config"
	"xdf/xdf"
)

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadConfigOrDefault(path string) *config.Config {
	if path == "" {
		cfg := &config.Config{}
		return cfg
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: xdfdump <command> [args]")
		fmt.Println("Commands: probe, dump")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "probe":
		if len(os.Args) < 3 {
			fmt.Println("Usage: xdfdump probe <file.xdf> [config.yaml]")
			os.Exit(1)
		}
		filePath := os.Args[2]
		configPath := ""
		if len(os.Args) > 3 {
			configPath = os.Args[3]
		}
		cfg := loadConfigOrDefault(configPath)

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}

		var file *xdf.XDFFile
		if cfg.Parse.Workers > 1 {
			file, err = xdf.ParseConcurrent(data, cfg.Parse.Workers, xdf.WithLogger(logger))
		} else {
			file, err = xdf.Parse(data, xdf.WithLogger(logger))
		}
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("XDF version %.1f, %d stream(s)\n", file.Version, len(file.Streams))
		for _, s := range file.Streams {
			name := s.Name
			if !s.HasName {
				name = "(unnamed)"
			}
			fmt.Printf("  - stream %d %q: %d channel(s), format=%s, samples=%d\n",
				s.ID, name, s.ChannelCount, s.ChannelFormat, len(s.Samples))
		}

	case "dump":
		if len(os.Args) < 4 {
			fmt.Println("Usage: xdfdump dump <file.xdf> <stream_id>")
			os.Exit(1)
		}
		filePath := os.Args[2]
		streamID, err := strconv.ParseUint(os.Args[3], 10, 32)
		if err != nil {
			fmt.Printf("Invalid stream id: %v\n", err)
			os.Exit(1)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}

		file, err := xdf.Parse(data)
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			os.Exit(1)
		}

		for _, s := range file.Streams {
			if uint64(s.ID) != streamID {
				continue
			}
			for _, sample := range s.Samples {
				ts, ok := sample.Timestamp()
				fmt.Printf("ts=%v has_ts=%v values=%+v\n", ts, ok, sample.Values)
			}
			return
		}
		fmt.Printf("No stream with id %d\n", streamID)
		os.Exit(1)

	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
