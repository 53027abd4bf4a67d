package http

import (
	"errors"
	"testing"

	"github.com/indigo-web/superhttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	t.Run("response passes through", func(t *testing.T) {
		resp := String(status.Accepted, "hello")
		require.Same(t, resp, Respond(resp))
	})

	t.Run("nil", func(t *testing.T) {
		require.Equal(t, status.OK, Respond(nil).Reveal().Code)

		var resp *Response
		require.Equal(t, status.OK, Respond(resp).Reveal().Code)
	})

	t.Run("successful result", func(t *testing.T) {
		resp := String(status.Accepted, "hello")
		require.Same(t, resp, Respond(Try(resp, nil)))
	})

	t.Run("failed result", func(t *testing.T) {
		resp := Respond(Try(String(status.OK, "unreachable"), errors.New("boom"))).Reveal()
		require.Equal(t, status.InternalServerError, resp.Code)
		require.Contains(t, string(resp.Body), "boom")
		require.Equal(t, "Failed to process http request: boom", string(resp.Body))
	})

	t.Run("nested results", func(t *testing.T) {
		resp := String(status.NoContent, "")
		require.Same(t, resp, Respond(Try(Try(resp, nil), nil)))

		inner := Respond(Try(Fail(errors.New("inner")), nil)).Reveal()
		require.Equal(t, status.InternalServerError, inner.Code)
		require.Contains(t, string(inner.Body), "inner")

		outer := Respond(Try(Fail(errors.New("inner")), errors.New("outer"))).Reveal()
		require.Contains(t, string(outer.Body), "outer")
	})
}

func TestHandlerFunc(t *testing.T) {
	var h Handler = HandlerFunc(func(request *Request) Responder {
		return String(status.OK, request.Path)
	})

	req := NewRequest(nil, nil)
	req.Path = "/hello"
	require.Equal(t, "/hello", string(Respond(h.Handle(req)).Reveal().Body))
}
