package llm

import (
	"io"
	"net/http"
	"time"
)

// 업스트림 JSON 응답 최대 크기
const maxJSONBytes int64 = 1 << 20

// newHTTPClient returns a client whose response bodies fail with
// ErrResponseTooLarge once more than limit bytes have been read.
func newHTTPClient(timeout time.Duration, limit int64) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &limitTransport{base: http.DefaultTransport, limit: limit},
	}
}

type limitTransport struct {
	base  http.RoundTripper
	limit int64
}

func (t *limitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || t.limit <= 0 {
		return resp, err
	}
	resp.Body = &cappedBody{ReadCloser: resp.Body, remaining: t.limit}
	return resp, nil
}

type cappedBody struct {
	io.ReadCloser
	remaining int64
}

func (b *cappedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, ErrResponseTooLarge
	}
	// one byte past the limit is enough to detect overflow
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.ReadCloser.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n, ErrResponseTooLarge
	}
	return n, err
}
