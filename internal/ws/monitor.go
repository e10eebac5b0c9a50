// Package ws serves rendered frames to browser clients over websockets,
// so a strip mounted out of sight can still be watched.
package ws

import (
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeDeadline = 200 * time.Millisecond

// Monitor implements display.Drawer: every frame the strip flushes is
// re-broadcast as JSON to the connected clients. It holds no reference
// to the strip or the effects, so it plugs into the led.Tee like any
// other sink.
type Monitor struct {
	mu        sync.RWMutex
	numLED    int
	frameID   uint64
	rgb       []byte
	program   string
	startTime time.Time
	clients   map[*websocket.Conn]bool
}

func NewMonitor(numLED int) *Monitor {
	return &Monitor{
		numLED:    numLED,
		rgb:       make([]byte, numLED*3),
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
	}
}

// SetProgram records the running program name for /health.
func (m *Monitor) SetProgram(name string) {
	m.mu.Lock()
	m.program = name
	m.mu.Unlock()
}

func (m *Monitor) String() string {
	return "wsmonitor"
}

func (m *Monitor) Halt() error {
	m.mu.Lock()
	for i := range m.rgb {
		m.rgb[i] = 0
	}
	m.mu.Unlock()
	return nil
}

func (m *Monitor) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.numLED, 1)
}

func (m *Monitor) ColorModel() color.Model {
	return color.NRGBAModel
}

// Draw ingests one frame and broadcasts it.
func (m *Monitor) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	m.mu.Lock()
	for x := 0; x < m.numLED && x < r.Dx(); x++ {
		c := color.NRGBAModel.Convert(src.At(sp.X+x, sp.Y)).(color.NRGBA)
		m.rgb[x*3+0] = c.R
		m.rgb[x*3+1] = c.G
		m.rgb[x*3+2] = c.B
	}
	m.frameID++
	frame := struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}{T: time.Now().UnixNano(), FrameID: m.frameID, RGB: m.rgb}
	b, _ := json.Marshal(frame)
	for c := range m.clients {
		c.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
	m.mu.Unlock()
	return nil
}

// Handler returns the monitor's HTTP routes.
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleFrames)
	mux.HandleFunc("/health", m.handleHealth)
	return mux
}

func (m *Monitor) handleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (m *Monitor) handleHealth(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := map[string]any{
		"frame_id": m.frameID,
		"uptime_s": time.Since(m.startTime).Seconds(),
		"num_led":  m.numLED,
		"program":  m.program,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
