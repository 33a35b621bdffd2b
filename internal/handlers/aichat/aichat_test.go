package aichat

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkorobeynikov/fintrack/internal/ai"
	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply     string
	chunks    []string
	err       error
	lastMsgs  []ai.Message
	streamErr error
}

func (p *stubProvider) Chat(_ context.Context, msgs []ai.Message) (string, error) {
	p.lastMsgs = msgs
	return p.reply, p.err
}

func (p *stubProvider) Stream(_ context.Context, msgs []ai.Message, out io.Writer) error {
	p.lastMsgs = msgs
	for _, c := range p.chunks {
		if _, err := out.Write([]byte(c)); err != nil {
			return err
		}
	}
	return p.streamErr
}

func TestChatHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		provider     *stubProvider
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Reply returned",
			body:         `{"messages":[{"role":"user","content":"How much did I spend on food?"}]}`,
			provider:     &stubProvider{reply: "About 12000 RUB this month."},
			expectedCode: http.StatusOK,
			expectedBody: "About 12000 RUB this month.",
		},
		{
			name:         "Provider unavailable",
			body:         `{"messages":[{"role":"user","content":"hi"}]}`,
			provider:     &stubProvider{err: ai.ErrUnavailable},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "AI provider unavailable",
		},
		{
			name:         "Empty conversation rejected",
			body:         `{"messages":[]}`,
			provider:     &stubProvider{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			provider:     &stubProvider{},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(tt.provider)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.Chat(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestStreamHandler(t *testing.T) {
	t.Run("Chunks relayed verbatim with SSE headers", func(t *testing.T) {
		provider := &stubProvider{chunks: []string{"data: {\"delta\":\"Abo\"}\n\n", "data: {\"delta\":\"ut\"}\n\n", "data: [DONE]\n\n"}}
		handler := New(provider)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/chat/stream",
			bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}]}`))
		rec := httptest.NewRecorder()
		handler.Stream(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), "data: [DONE]")
		assert.Len(t, provider.lastMsgs, 1)
	})

	t.Run("Mid-stream failure ends the stream, already-sent chunks stay", func(t *testing.T) {
		provider := &stubProvider{chunks: []string{"data: {\"delta\":\"partial\"}\n\n"}, streamErr: errors.New("upstream reset")}
		handler := New(provider)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/chat/stream",
			bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}]}`))
		rec := httptest.NewRecorder()
		handler.Stream(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "partial")
	})
}
