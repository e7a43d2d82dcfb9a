package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/logsink"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[sink]
  type = "file"
  directory = "./simple_logs"
  file_name = "simple.log"
  reopen_interval = "5"
`

func main() {
	fmt.Println("--- Simple Sink Example ---")

	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue; the default colorized console sink takes over
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	// Load the sink configuration and establish the process-wide sink.
	// The first successful Configure wins for the process lifetime.
	cfg, err := logsink.ConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := logsink.Configure(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure sink: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Sink configured.")

	logsink.Debug("This is a debug message.", "user_id", 123)
	logsink.Info("Application starting...")
	logsink.Warn("Potential issue detected.", "threshold", 0.95)
	logsink.Error("An error occurred!", "code", 500)

	// A custom-labeled line via the raw escape hatch
	_ = logsink.WriteRaw(logsink.Timestamp(time.Now()) + " [CUSTOM] manually formatted record\n")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 2; j++ {
				logsink.Error("goroutine", id, "iteration", j)
				logsink.Warn("goroutine", id, "iteration", j)
				logsink.Info("goroutine", id, "iteration", j)
				logsink.Debug("goroutine", id, "iteration", j)
				logsink.Trace("goroutine", id, "iteration", j)
				time.Sleep(10 * time.Millisecond)
			}
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")
	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
