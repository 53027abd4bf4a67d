package superhttp

import (
	"context"
	"log/slog"
	"net"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/http"
	"github.com/indigo-web/superhttp/internal/protocol/http1"
	"github.com/indigo-web/superhttp/internal/telemetry"
	"github.com/indigo-web/superhttp/transport"
)

// TelemetryOptions override where logs, metrics and traces are reported to.
type TelemetryOptions = telemetry.Options

// App serves HTTP/1.1 requests on a single address. Every connection carries exactly one
// request: it's parsed, passed to the handler, the response is written and the connection
// is closed.
type App struct {
	cfg   config.Config
	tcp   *transport.TCP
	tel   TelemetryOptions
	hooks hooks
}

// New binds the address, so the App is able to accept connections right after the
// call, even though they won't be served until Serve is called.
func New(addr string) (*App, error) {
	tcp := transport.NewTCP(nil)
	if err := tcp.Bind(addr); err != nil {
		return nil, err
	}

	return &App{
		cfg: *config.Default(),
		tcp: tcp,
	}, nil
}

// Tune replaces the default config.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the logger. By default, logs go through the OpenTelemetry log bridge.
func (a *App) Logger(logger *slog.Logger) *App {
	a.tel.Logger = logger
	return a
}

// Telemetry replaces the providers logs, metrics and traces are reported to. By default,
// the otel global providers are used.
func (a *App) Telemetry(opts TelemetryOptions) *App {
	a.tel = opts
	return a
}

// NotifyOnStart calls the callback as soon as the App starts accepting connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the App stopped accepting connections and all the
// already accepted ones are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound address.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve blocks, serving connections until Stop is called or the listener fails. The handler
// is shared by all the connections, so it's called concurrently.
func (a *App) Serve(handler http.Handler) error {
	tel, err := telemetry.New(a.tel)
	if err != nil {
		return err
	}

	a.tcp.SetLogger(tel.Logger)
	tel.Logger.Info("listening",
		"addr", a.Addr().String(),
		"max_workers", a.cfg.NET.MaxWorkers,
	)

	callIfNotNil(a.hooks.OnStart)
	err = a.tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		ctx := context.Background()
		tel.Connections.Add(ctx, 1)
		tel.Active.Add(ctx, 1)
		defer tel.Active.Add(ctx, -1)

		http1.New(a.cfg, conn, handler, tel).Serve()
	})

	a.tcp.Wait()
	a.tcp.Close()
	callIfNotNil(a.hooks.OnStop)

	if err != nil {
		tel.Logger.Error("listener failed", "error", err)
		return err
	}

	tel.Logger.Info("stopped")
	return nil
}

// ServeFunc is a shorthand for Serve(http.HandlerFunc(fn)).
func (a *App) ServeFunc(fn func(request *http.Request) http.Responder) error {
	return a.Serve(http.HandlerFunc(fn))
}

// Stop stops accepting new connections. Connections being served are served till the end,
// and Serve returns only after that.
//
// NOTE: the call isn't blocking.
func (a *App) Stop() {
	a.tcp.Stop()
	a.tcp.Close()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
