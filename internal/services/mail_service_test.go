package services

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailService(t *testing.T, cfg SMTPConfig) *smtpMailService {
	t.Helper()
	svc, err := NewSMTPMailService(cfg)
	require.NoError(t, err)
	return svc.(*smtpMailService)
}

func TestBuildMessageHeadersAndParts(t *testing.T) {
	s := newTestMailService(t, SMTPConfig{From: "trips@example.com", FromName: "Tripwise Café"})

	raw := s.buildMessage("asha@example.com", "Your trip to Kōchi is confirmed", "<p>html body</p>", "text body")
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	from, err := mail.ParseAddress(msg.Header.Get("From"))
	require.NoError(t, err)
	assert.Equal(t, "Tripwise Café", from.Name)
	assert.Equal(t, "trips@example.com", from.Address)

	assert.Equal(t, "asha@example.com", msg.Header.Get("To"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))
	_, err = msg.Header.Date()
	assert.NoError(t, err)

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Your trip to Kōchi is confirmed", subject)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)
	require.NotEmpty(t, params["boundary"])

	r := multipart.NewReader(msg.Body, params["boundary"])
	wantParts := []struct{ contentType, body string }{
		{"text/plain; charset=UTF-8", "text body"},
		{"text/html; charset=UTF-8", "<p>html body</p>"},
	}
	for _, want := range wantParts {
		part, err := r.NextPart()
		require.NoError(t, err)
		assert.Equal(t, want.contentType, part.Header.Get("Content-Type"))
		body, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, want.body, strings.TrimSpace(string(body)))
	}
	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFormatFromHeader(t *testing.T) {
	s := newTestMailService(t, SMTPConfig{From: "trips@example.com"})
	assert.Equal(t, "trips@example.com", s.formatFromHeader())

	s = newTestMailService(t, SMTPConfig{From: "trips@example.com", FromName: "  Tripwise  "})
	assert.Equal(t, "Tripwise <trips@example.com>", s.formatFromHeader())
}
