package mailer

import (
	"context"
	"testing"

	"github.com/opostest/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSenderFallsBackToLog(t *testing.T) {
	s, err := NewSender(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, LogSender{}, s)
	assert.NoError(t, s.Send(context.Background(), Message{To: []string{"a@b.es"}, Subject: "hola"}))
}

func TestSendRequiresRecipients(t *testing.T) {
	assert.ErrorIs(t, LogSender{}.Send(context.Background(), Message{}), ErrNoRecipients)

	s, err := NewSender(&config.Config{Mail: config.Mail{Host: "localhost", Port: 2525, From: "no-reply@example.com"}})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Send(context.Background(), Message{Subject: "x"}), ErrNoRecipients)
}
