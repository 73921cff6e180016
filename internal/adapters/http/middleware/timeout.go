package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
)

// MsgTimeout is the problem text sent when a request exceeds its deadline.
const MsgTimeout = "Request timed out"

// Timeout bounds each request to d. The handler runs with a context carrying
// the deadline and writes into a buffer. If it finishes in time the buffer is
// sent; otherwise the client gets a 504 problem response and anything the
// handler writes later fails with http.ErrHandlerTimeout. A non-positive d
// disables the limit.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Surface the panic on the serving goroutine for Recovery.
				panic(v)
			case <-done:
				bw.sendTo(w)
			case <-ctx.Done():
				bw.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteProblem(w, r, http.StatusGatewayTimeout, MsgTimeout)
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	status  int
	body    []byte
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// expire makes every later write fail.
func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
}

func (bw *bufferedWriter) sendTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
