package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			m := i.String()
			b.SetBytes(int64(len(m)))
			b.ResetTimer()

			for range b.N {
				parsed = Parse(m)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		require.Len(t, List, int(Count))

		for _, method := range List {
			assert.Equal(t, method, Parse(method.String()))
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		for _, str := range []string{"get", "Get", "pOST", "delete"} {
			assert.Equal(t, Unknown, Parse(str), str)
		}
	})

	t.Run("extension methods", func(t *testing.T) {
		for _, str := range []string{"", "PROPFIND", "MKCOL", "GETS", "PUTT", "UNKNOWN"} {
			assert.Equal(t, Unknown, Parse(str), str)
		}
	})

	t.Run("string of out of range", func(t *testing.T) {
		require.Equal(t, "UNKNOWN", Method(200).String())
	})
}
