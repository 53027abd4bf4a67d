package http1

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/indigo-web/superhttp/config"
	"github.com/indigo-web/superhttp/http"
	"github.com/indigo-web/superhttp/http/status"
	"github.com/indigo-web/superhttp/internal/telemetry"
	"github.com/indigo-web/superhttp/internal/timer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const malformedRequestPrefix = "Malformed request: "

// Suit serves exactly one request off the connection: it's read, handed to the handler,
// and the result is written back. The connection isn't closed by the suit.
type Suit struct {
	*Parser
	*Serializer
	cfg     config.Config
	conn    net.Conn
	handler http.Handler
	tel     *telemetry.Telemetry
}

func New(cfg config.Config, conn net.Conn, handler http.Handler, tel *telemetry.Telemetry) *Suit {
	reader := bufio.NewReaderSize(conn, cfg.NET.ReadBufferSize)

	return &Suit{
		Parser:     NewParser(reader, cfg.Headers),
		Serializer: NewSerializer(nil, conn),
		cfg:        cfg,
		conn:       conn,
		handler:    handler,
		tel:        tel,
	}
}

// Serve processes a single request. Malformed requests are answered with 400 Bad Request,
// failed handlers with 500 Internal Server Error. If the connection broke while reading,
// nothing is written at all.
func (s *Suit) Serve() {
	logger := s.tel.Logger.With("remote", s.conn.RemoteAddr())

	if s.cfg.NET.ReadTimeout > 0 {
		_ = s.conn.SetReadDeadline(timer.Deadline(s.cfg.NET.ReadTimeout))
	}

	request, err := s.Parse()
	if err != nil {
		if !IsParseError(err) {
			logger.Debug("dropping the connection", "error", err)
			return
		}

		logger.Debug("malformed request", "error", err)
		s.tel.ParseErrors.Add(context.Background(), 1)
		s.write(logger, http.String(status.BadRequest, malformedRequestPrefix+err.Error()))
		return
	}

	request.Remote = s.conn.RemoteAddr()
	ctx, span := s.tel.Tracer.Start(context.Background(), "HTTP "+request.Method.String(),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", request.Method.String()),
			attribute.String("url.path", request.Path),
			attribute.String("network.protocol.version", request.Protocol.String()),
		),
	)
	defer span.End()

	response := s.handle(logger, request)
	code := response.Reveal().Code
	span.SetAttributes(attribute.Int("http.response.status_code", int(code)))
	if code >= status.InternalServerError {
		span.SetStatus(codes.Error, status.Reason(code))
	}

	logger.DebugContext(ctx, "request processed",
		"method", request.Method.String(),
		"path", request.Path,
		"code", int(code),
	)
	s.write(logger, response)
}

// handle calls the handler, turning a panic into a failed result.
func (s *Suit) handle(logger *slog.Logger, request *http.Request) (response *http.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panicked", "panic", r, "path", request.Path)
			response = http.Fail(fmt.Errorf("panic: %v", r)).Respond()
		}
	}()

	if response = http.Respond(s.handler.Handle(request)); response == nil {
		response = http.NewResponse()
	}

	return response
}

// write sends the response. Failures are only logged, as the connection is going to be
// closed anyway.
func (s *Suit) write(logger *slog.Logger, response *http.Response) {
	if s.cfg.NET.WriteTimeout > 0 {
		_ = s.conn.SetWriteDeadline(timer.Deadline(s.cfg.NET.WriteTimeout))
	}

	if err := s.Write(response); err != nil {
		logger.Warn("failed to write the response", "error", err)
		return
	}

	s.tel.Responses.Add(context.Background(), 1, metric.WithAttributes(
		attribute.Int("http.response.status_code", int(response.Reveal().Code)),
	))
}
