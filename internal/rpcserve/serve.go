package rpcserve

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/saibing/gors/internal/config"
)

// Mode selects the transport ServeAndBlock listens on.
type Mode string

const (
	ModeStdio Mode = "stdio"
	ModeTCP   Mode = "tcp"
)

// ServeAndBlock starts a gors JSON-RPC server under mode and blocks until
// the connection (stdio) or listener (tcp) shuts down. It mirrors the
// teacher's own "-mode stdio|tcp" main loop.
func ServeAndBlock(mode Mode, addr string, defaultCfg config.Config, trace bool) error {
	var connOpt []jsonrpc2.ConnOpt
	if trace {
		connOpt = append(connOpt, jsonrpc2.LogMessages(log.New(os.Stderr, "", 0)))
	}

	handler := NewHandler(defaultCfg)

	switch mode {
	case ModeTCP:
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		defer lis.Close()

		log.Println("gors: listening on", addr)
		for {
			conn, err := lis.Accept()
			if err != nil {
				return err
			}
			jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), handler, connOpt...)
		}

	case ModeStdio:
		log.Println("gors: reading on stdin, writing on stdout")
		<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), handler, connOpt...).DisconnectNotify()
		log.Println("gors: connection closed")
		return nil

	default:
		return fmt.Errorf("rpcserve: invalid mode %q", mode)
	}
}

// stdrwc adapts os.Stdin/os.Stdout to an io.ReadWriteCloser, the stdio
// transport jsonrpc2.NewBufferedStream expects.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

var _ io.ReadWriteCloser = stdrwc{}
