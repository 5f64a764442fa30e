package ws_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/interfaces/ws"
	"github.com/jhoicas/restaurante-mis/pkg/logger"
)

func TestHub_NotifyNoBloqueaSinRun(t *testing.T) {
	h := ws.NewHub(logger.Nop())
	for i := 0; i < 200; i++ {
		h.NotifyFeedback(entity.Feedback{ID: "fb", Rating: 5})
	}
	assert.Equal(t, 0, h.Clients())
}

func TestHub_RunTerminaConContexto(t *testing.T) {
	h := ws.NewHub(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	h.NotifyFeedback(entity.Feedback{ID: "fb"})
	cancel()
	<-done
	select {
	case <-h.Done():
	default:
		t.Fatal("Done debe cerrarse al terminar Run")
	}
}

// serveHub levanta /ws/feedback en un puerto libre y devuelve la URL ws://.
func serveHub(t *testing.T, h *ws.Hub) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/ws/feedback", ws.Upgrade(), h.Handler())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.ShutdownWithTimeout(time.Second) })
	return "ws://" + ln.Addr().String() + "/ws/feedback"
}

func readWithin(t *testing.T, conn *websocket.Conn, d time.Duration) ([]byte, error) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(d)))
	_, raw, err := conn.ReadMessage()
	return raw, err
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func TestHub_ClienteConectadoRecibeFeedback(t *testing.T) {
	h := ws.NewHub(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)
	url := serveHub(t, h)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return h.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	h.NotifyFeedback(entity.Feedback{ID: "fb-1", Rating: 4, CustomerName: "Ana", Feedback: "Muy rico"})

	raw, err := readWithin(t, conn, 2*time.Second)
	require.NoError(t, err)
	var msg struct {
		Type string          `json:"type"`
		Data entity.Feedback `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "feedback", msg.Type)
	assert.Equal(t, "fb-1", msg.Data.ID)
	assert.Equal(t, 4, msg.Data.Rating)
	assert.Equal(t, "Ana", msg.Data.CustomerName)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_DetenidoCierraConexiones(t *testing.T) {
	h := ws.NewHub(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	url := serveHub(t, h)

	open, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer open.Close()
	require.Eventually(t, func() bool { return h.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó")
	}

	_, err = readWithin(t, open, 2*time.Second)
	require.Error(t, err)
	assert.False(t, isTimeout(err), "la conexión abierta se cierra al detener el hub")

	// Una conexión que llega con el hub detenido se cierra sin quedar colgada.
	late, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer late.Close()
	_, err = readWithin(t, late, 2*time.Second)
	require.Error(t, err)
	assert.False(t, isTimeout(err))
	assert.Equal(t, 0, h.Clients())
}

func TestUpgrade_RechazaHTTPPlano(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/feedback", ws.Upgrade(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/feedback", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
