// FILE: example/gnet/main.go
package main

import (
	"github.com/lixenwraith/logsink"
	"github.com/lixenwraith/logsink/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	// Colorized console sink for gnet's engine messages
	err := logsink.Configure(logsink.Config{
		"type":  "std_out",
		"color": "",
	})
	if err != nil {
		panic(err)
	}

	gnetAdapter := compat.NewGnetAdapter(logsink.DefaultSink())

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
