package web

import (
	"bytes"
	"net/http"
)

// recorder is the minimal http.ResponseWriter render.HTML needs.
type recorder struct {
	buf    *bytes.Buffer
	header http.Header
}

func (r *recorder) Header() http.Header {
	if r.header == nil {
		r.header = http.Header{}
	}
	return r.header
}

func (r *recorder) Write(b []byte) (int, error) { return r.buf.Write(b) }

func (r *recorder) WriteHeader(int) {}
