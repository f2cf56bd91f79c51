package chatbot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orozcodev/comedor-pos/pkg/gateway"
)

func TestProcessMessageDebtorsScenario(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})
	intents := DefaultIntents()

	resp := svc.ProcessMessage(context.Background(), "mostrar deudores", intents)
	require.Equal(t, ResponseTypeData, resp.Type)
	require.Equal(t, "get_debtors", resp.Intent)
	require.Contains(t, resp.Message, "Juan Pérez")
	require.Contains(t, resp.Message, "María López")
	require.NotNil(t, resp.Data)
}

func TestProcessMessageDebtorsEmptyLedger(t *testing.T) {
	svc := NewChatBotService(gateway.NewMemory(), noopLogger{})

	resp := svc.ProcessMessage(context.Background(), "mostrar deudores", DefaultIntents())
	require.Equal(t, ResponseTypeData, resp.Type)
	require.Contains(t, resp.Message, "(0)")
	require.Contains(t, resp.Message, NoResultsMessage)
	require.NotContains(t, resp.Message, "{{")
}

func TestProcessMessageZeroDebtScenario(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})
	intents := DefaultIntents()

	resp := svc.ProcessMessage(context.Background(), "cuánto debe cliente999", intents)
	require.Equal(t, ResponseTypeData, resp.Type)
	require.Equal(t, "get_client_debt", resp.Intent)
	require.Contains(t, resp.Message, "$0.00")
	require.Contains(t, resp.Message, "0 factura(s)")
}

func TestProcessMessageHelpFallback(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})

	resp := svc.ProcessMessage(context.Background(), "ayuda", DefaultIntents())
	require.Equal(t, ResponseTypeNormal, resp.Type)
	require.Empty(t, resp.Intent)
	require.Contains(t, resp.Message, "buscar cliente")
}

func TestProcessMessageUnknownFallback(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})

	resp := svc.ProcessMessage(context.Background(), "cuéntame un chiste", DefaultIntents())
	require.Equal(t, ResponseTypeNormal, resp.Type)
	require.Equal(t, unknownMessage, resp.Message)
}

func TestProcessMessageGatewayOutage(t *testing.T) {
	svc := NewChatBotService(failingGateway{}, noopLogger{})

	resp := svc.ProcessMessage(context.Background(), "mostrar deudores", DefaultIntents())
	require.Equal(t, ResponseTypeError, resp.Type)
	require.NotEmpty(t, resp.Message)
	require.Equal(t, "get_debtors", resp.Intent)
	require.Nil(t, resp.Data)
}

func TestProcessMessageIsIdempotent(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})
	intents := DefaultIntents()
	ctx := context.Background()

	first := svc.ProcessMessage(ctx, "mostrar deudores", intents)
	second := svc.ProcessMessage(ctx, "mostrar deudores", intents)
	require.Equal(t, first.Message, second.Message)
	require.Equal(t, first.Type, second.Type)
	require.Equal(t, first.Intent, second.Intent)
}

func TestProcessMessageRecoversFromPanic(t *testing.T) {
	// Un gateway nil provoca un pánico dentro del ejecutor; el servicio
	// debe degradarlo a una respuesta de error genérica
	svc := NewChatBotService(nil, noopLogger{})

	resp := svc.ProcessMessage(context.Background(), "mostrar deudores", DefaultIntents())
	require.Equal(t, ResponseTypeError, resp.Type)
	require.Equal(t, genericErrorMessage, resp.Message)
}

func TestProcessMessageUnknownActionIntent(t *testing.T) {
	svc := NewChatBotService(seedGateway(t), noopLogger{})
	intents := []Intent{
		{ID: "x", Name: "rota", Keywords: []string{"magia"}, Action: "hacer_magia", ResponseTemplate: "{{results}}", Enabled: true},
	}

	resp := svc.ProcessMessage(context.Background(), "magia por favor", intents)
	require.Equal(t, ResponseTypeError, resp.Type)
	require.Contains(t, resp.Message, ErrUnknownAction)
}
