// FILE: example/fasthttp/main.go
package main

import (
	"strings"
	"time"

	"github.com/lixenwraith/logsink"
	"github.com/lixenwraith/logsink/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Route everything, including fasthttp's internal messages, to a
	// rotating file sink.
	err := logsink.Configure(logsink.Config{
		"type":            "file",
		"directory":       "/var/log/fasthttp",
		"file_name":       "server.log",
		"reopen_interval": "300",
	})
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logsink.DefaultSink(),
		compat.WithDefaultLevel(logsink.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	logsink.Info("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	ctx.WriteString("Hello, world! Path: " + string(ctx.Path()) + "\n")
}

func customLevelDetector(msg string) logsink.Level {
	// Can inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return logsink.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return logsink.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
