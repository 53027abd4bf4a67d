package response

import (
	"github.com/indigo-web/superhttp/http/proto"
	"github.com/indigo-web/superhttp/http/status"
	"github.com/indigo-web/superhttp/kv"
)

// Fields are the values collected by the response builder. A nil Body means there's no
// body at all and nothing is written after the headers block.
type Fields struct {
	Headers  *kv.Storage
	Body     []byte
	Protocol proto.Version
	Code     status.Code
}

func (f Fields) Clear() Fields {
	f.Code = status.OK
	f.Protocol = proto.HTTP11
	f.Headers.Clear()
	f.Body = nil

	return f
}
