package mailgun

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mg "github.com/mailgun/mailgun-go/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type providerStub struct {
	server   *httptest.Server
	requests []*http.Request
	forms    []map[string]string
	status   int
}

func newProviderStub(t *testing.T) *providerStub {
	t.Helper()
	stub := &providerStub{status: http.StatusOK}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			_ = r.ParseMultipartForm(1 << 20)
		} else {
			_ = r.ParseForm()
		}
		form := map[string]string{}
		for key, values := range r.Form {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
		stub.requests = append(stub.requests, r)
		stub.forms = append(stub.forms, form)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = w.Write([]byte(`{"id":"<20260901.1@mg.zititex.com>","message":"Queued. Thank you."}`))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func newTestService(t *testing.T, stub *providerStub) *Service {
	t.Helper()
	cfg := Config{
		APIKey: "key-test",
		Domain: "mg.zititex.com",
		Sender: "Zititex <noreply@zititex.com>",
	}
	client := mg.NewMailgun(cfg.APIKey)
	client.SetAPIBase(stub.server.URL)
	return New(cfg, client, zerolog.New(io.Discard))
}

func TestSendSuccess(t *testing.T) {
	stub := newProviderStub(t)
	svc := newTestService(t, stub)

	outcome := svc.Send(context.Background(), Message{
		To:      []string{"ventas@zititex.com"},
		Subject: "Nuevo contacto",
		Text:    "Nombre: Juan Pérez",
		ReplyTo: "juan@example.com",
	})

	require.NotNil(t, outcome)
	require.Equal(t, "<20260901.1@mg.zititex.com>", outcome.MessageID)

	require.Len(t, stub.forms, 1)
	form := stub.forms[0]
	require.Equal(t, "Zititex <noreply@zititex.com>", form["from"])
	require.Equal(t, "ventas@zititex.com", form["to"])
	require.Equal(t, "Nuevo contacto", form["subject"])
	require.Equal(t, "Nombre: Juan Pérez", form["text"])
	require.Equal(t, "juan@example.com", form["h:Reply-To"])
}

func TestSendIncludesHTMLAndCopies(t *testing.T) {
	stub := newProviderStub(t)
	svc := newTestService(t, stub)

	outcome := svc.Send(context.Background(), Message{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Hola",
		Text:    "cuerpo",
		HTML:    "<p>cuerpo</p>",
		CC:      []string{"cc@example.com"},
		BCC:     []string{"bcc@example.com"},
	})

	require.NotNil(t, outcome)
	require.Len(t, stub.forms, 1)
	form := stub.forms[0]
	require.Equal(t, "<p>cuerpo</p>", form["html"])
	require.Equal(t, "cc@example.com", form["cc"])
	require.Equal(t, "bcc@example.com", form["bcc"])
}

func TestSendProviderErrorReturnsNilOutcome(t *testing.T) {
	stub := newProviderStub(t)
	stub.status = http.StatusUnauthorized
	svc := newTestService(t, stub)

	outcome := svc.Send(context.Background(), Message{
		To:      []string{"ventas@zititex.com"},
		Subject: "Nuevo contacto",
		Text:    "cuerpo",
	})

	require.Nil(t, outcome)
	require.Len(t, stub.requests, 1, "exactly one attempt, no retry")
}

func TestSendMissingCredentialsSkipsNetworkCall(t *testing.T) {
	stub := newProviderStub(t)
	svc := New(Config{}, nil, zerolog.New(io.Discard))

	require.False(t, svc.Enabled())
	outcome := svc.Send(context.Background(), Message{
		To:      []string{"ventas@zititex.com"},
		Subject: "Nuevo contacto",
		Text:    "cuerpo",
	})

	require.Nil(t, outcome)
	require.Empty(t, stub.requests)
}

func TestSendIncompleteMessageSkipsNetworkCall(t *testing.T) {
	stub := newProviderStub(t)
	svc := newTestService(t, stub)

	require.Nil(t, svc.Send(context.Background(), Message{Subject: "sin destinatario", Text: "x"}))
	require.Nil(t, svc.Send(context.Background(), Message{To: []string{"a@b.com"}, Text: "sin asunto"}))
	require.Nil(t, svc.Send(context.Background(), Message{To: []string{"a@b.com"}, Subject: "sin cuerpo"}))
	require.Empty(t, stub.requests)
}

func TestSendWelcomeDelegates(t *testing.T) {
	stub := newProviderStub(t)
	svc := newTestService(t, stub)

	outcome := svc.SendWelcome(context.Background(), "juan@example.com", "Juan")
	require.NotNil(t, outcome)

	require.Len(t, stub.forms, 1)
	form := stub.forms[0]
	require.Equal(t, "juan@example.com", form["to"])
	require.Equal(t, "Bienvenido a Zititex", form["subject"])
	require.Contains(t, form["text"], "Hola Juan")
}
