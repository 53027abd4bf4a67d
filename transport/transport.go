package transport

import (
	"net"

	"github.com/indigo-web/superhttp/config"
)

// Transport binds an address and hands every accepted connection over to the callback,
// each in its own goroutine. The connection is closed as soon as the callback returns.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
