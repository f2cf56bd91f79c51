package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orozcodev/comedor-pos/pkg/gateway"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestSaveAndGetHistory(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})
	ctx := context.Background()

	first := &Message{SessionID: "s1", Sender: SenderUser, Text: "mostrar deudores", Timestamp: "2026-08-30T10:00:00Z"}
	second := &Message{SessionID: "s1", Sender: SenderBot, Text: "📋 Clientes con deuda pendiente", Type: "data", Intent: "get_debtors", Timestamp: "2026-08-30T10:00:01Z"}
	require.NoError(t, repo.SaveMessage(ctx, first))
	require.NoError(t, repo.SaveMessage(ctx, second))
	require.NotEmpty(t, first.ID)

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, SenderUser, history[0].Sender)
	require.Equal(t, SenderBot, history[1].Sender)
	require.Equal(t, "get_debtors", history[1].Intent)
}

func TestGetHistoryAbsentSession(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})

	history, err := repo.GetHistory(context.Background(), "nadie", 0)
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
}

func TestGetHistoryLimitKeepsMostRecent(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})
	ctx := context.Background()

	for i, ts := range []string{"2026-08-30T10:00:00Z", "2026-08-30T10:01:00Z", "2026-08-30T10:02:00Z"} {
		require.NoError(t, repo.SaveMessage(ctx, &Message{
			SessionID: "s1",
			Sender:    SenderUser,
			Text:      string(rune('a' + i)),
			Timestamp: ts,
		}))
	}

	history, err := repo.GetHistory(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "b", history[0].Text)
	require.Equal(t, "c", history[1].Text)
}

func TestClearHistory(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.SaveMessage(ctx, &Message{SessionID: "s1", Sender: SenderUser, Text: "hola"}))
	require.NoError(t, repo.ClearHistory(ctx, "s1"))

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestSaveMessageRequiresSession(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})

	err := repo.SaveMessage(context.Background(), &Message{Sender: SenderUser, Text: "hola"})
	require.Error(t, err)
}

func TestHistoriesAreIsolatedBySession(t *testing.T) {
	repo := NewRepository(gateway.NewMemory(), noopLogger{})
	ctx := context.Background()

	require.NoError(t, repo.SaveMessage(ctx, &Message{SessionID: "s1", Sender: SenderUser, Text: "uno"}))
	require.NoError(t, repo.SaveMessage(ctx, &Message{SessionID: "s2", Sender: SenderUser, Text: "dos"}))

	history, err := repo.GetHistory(ctx, "s2", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "dos", history[0].Text)
}
