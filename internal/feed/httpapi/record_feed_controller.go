package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"profiling-server/internal/infra/async"
	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/events"

	"github.com/gorilla/websocket"
	"github.com/thoas/go-funk"
)

const (
	_writeWait    = 10 * time.Second
	_pongWait     = 60 * time.Second
	_pingPeriod   = 54 * time.Second
	_clientBuffer = 32

	unknownEntityErrMessage = "unknown entity"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the api is consumed cross origin; CORS is handled by the server
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn     *websocket.Conn
	entities []string
	send     chan events.RecordChanged
}

func (c *client) wants(entity string) bool {
	return len(c.entities) == 0 || funk.ContainsString(c.entities, entity)
}

// RecordFeedController streams record changes to websocket clients so they
// can invalidate cached queries. Clients may narrow the feed with
// ?entity=resident,household.
type RecordFeedController struct {
	broker     async.InternalBroker
	entities   []string
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
	once       sync.Once
}

func NewRecordFeedController(broker async.InternalBroker, entities ...string) *RecordFeedController {
	ctx, cancel := context.WithCancel(context.Background())

	c := &RecordFeedController{
		broker:     broker,
		entities:   entities,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	ready := make(chan struct{})
	go c.run(ready)
	<-ready

	return c
}

var _ httpserver.Controller = (*RecordFeedController)(nil)

func (c *RecordFeedController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/records", c.handleWebSocket())
}

func (c *RecordFeedController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseEntities(httpserver.GetQueryParam(r, "entity"))
		if unknown := funk.SubtractString(filter, c.entities); len(c.entities) > 0 && len(unknown) > 0 {
			httpserver.ReplyWithError(w, http.StatusBadRequest, unknownEntityErrMessage+": "+strings.Join(unknown, ","))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		cl := &client{conn: conn, entities: filter, send: make(chan events.RecordChanged, _clientBuffer)}
		select {
		case c.register <- cl:
		case <-c.ctx.Done():
			conn.Close()
			return
		}

		slog.Debug("record feed client connected",
			slog.String("remote_addr", r.RemoteAddr),
			slog.Any("entities", filter),
		)

		go c.writePump(cl)
		go c.readPump(cl)
	}
}

func parseEntities(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := funk.Map(strings.Split(raw, ","), func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}).([]string)
	return funk.UniqString(funk.FilterString(parts, func(s string) bool { return s != "" }))
}

// readPump only keeps the read deadline moving; clients do not send data.
func (c *RecordFeedController) readPump(cl *client) {
	defer func() {
		select {
		case c.unregister <- cl:
		case <-c.ctx.Done():
		}
	}()

	cl.conn.SetReadLimit(512)
	cl.conn.SetReadDeadline(time.Now().Add(_pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(_pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("record feed read error", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *RecordFeedController) writePump(cl *client) {
	ticker := time.NewTicker(_pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case change, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(_writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := cl.conn.WriteJSON(change); err != nil {
				slog.Debug("record feed write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(_writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *RecordFeedController) run(ready chan<- struct{}) {
	defer close(c.done)
	// nothing drains register once run returns, so handlers must see ctx done
	defer c.cancel()

	subscription, err := c.broker.Subscribe(events.RecordsTopic)
	close(ready)
	if err != nil {
		slog.Error("subscribing to record changes", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(events.RecordsTopic, subscription)
	defer func() {
		for cl := range c.clients {
			c.drop(cl)
		}
	}()

	for {
		select {
		case <-c.ctx.Done():
			return

		case cl := <-c.register:
			c.clients[cl] = struct{}{}
			slog.Debug("record feed client registered", slog.Int("clients", len(c.clients)))

		case cl := <-c.unregister:
			c.drop(cl)

		case msg, ok := <-subscription.Receiver:
			if !ok {
				slog.Warn("record changes subscription closed")
				return
			}
			c.dispatch(msg)
		}
	}
}

func (c *RecordFeedController) dispatch(msg async.BrokerMessage) {
	if msg.Event != events.RecordChangedEvent {
		return
	}
	change, ok := msg.Value.(events.RecordChanged)
	if !ok {
		return
	}

	entity := utils.ExtractStringValue(change, "Entity")
	for cl := range c.clients {
		if !cl.wants(entity) {
			continue
		}
		select {
		case cl.send <- change:
		default:
			// a client this far behind has to resync anyway
			slog.Warn("record feed client too slow, disconnecting")
			c.drop(cl)
		}
	}
}

func (c *RecordFeedController) drop(cl *client) {
	if _, ok := c.clients[cl]; !ok {
		return
	}
	delete(c.clients, cl)
	close(cl.send)
}

func (c *RecordFeedController) Shutdown() {
	c.once.Do(func() {
		slog.Info("shutting down record feed")
		c.cancel()
		<-c.done
	})
}
