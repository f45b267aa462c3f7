package handlers

import (
	"log"
	"mazegen-backend/models"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

type Client struct {
	Conn       *websocket.Conn
	ClientType string // "engine" 또는 "web"
}

// 클라이언트 관리자
type ClientManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan models.WebSocketMessage
	register   chan *Client
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// 전역 클라이언트 관리자
var Manager = &ClientManager{
	clients:    make(map[*websocket.Conn]*Client),
	broadcast:  make(chan models.WebSocketMessage, 100),
	register:   make(chan *Client),
	unregister: make(chan *websocket.Conn),
}

// 클라이언트 관리 시작
func (manager *ClientManager) Start() {
	for {
		select {
		case client := <-manager.register:
			manager.mutex.Lock()
			manager.clients[client.Conn] = client
			manager.mutex.Unlock()
			log.Printf("클라이언트 등록: %s (%s)", client.ClientType, client.Conn.RemoteAddr())

		case conn := <-manager.unregister:
			manager.mutex.Lock()
			if client, ok := manager.clients[conn]; ok {
				delete(manager.clients, conn)
				_ = conn.Close()
				log.Printf("클라이언트 해제: %s (%s)", client.ClientType, conn.RemoteAddr())
			}
			manager.mutex.Unlock()
		case message := <-manager.broadcast:
			manager.handleBroadcast(message)
		}
	}
}

func (manager *ClientManager) handleBroadcast(message models.WebSocketMessage) {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	for conn, client := range manager.clients {
		// 메시지 타입에 따라 전송 대상 결정
		shouldSend := false

		switch message.Type {
		case models.MessageTypeMazeUpdate,
			models.MessageTypeRobotUpdate:
			// 씬 업데이트는 엔진과 웹 모두에게 전송
			shouldSend = true
		case models.MessageTypeGenerationProgress,
			models.MessageTypeSystemInfo:
			// 진행 상황은 웹 클라이언트에게만 전송
			if client.ClientType == "web" {
				shouldSend = true
			}
		}

		if shouldSend {
			err := conn.WriteJSON(message)
			if err != nil {
				log.Printf("전송 실패 (%s): %v", client.ClientType, err)
				// Start 루프 안에서 unregister를 직접 보내면 데드락
				go func(c *websocket.Conn) { manager.unregister <- c }(conn)
			}
		}
	}
}

// 외부에서 호출할 수 있는 브로드캐스트 메서드
func (manager *ClientManager) BroadcastMessage(msg models.WebSocketMessage) {
	select {
	case manager.broadcast <- msg:
	default:
		log.Println("⚠️ broadcast 채널 가득 참")
	}
}

func (manager *ClientManager) GetClientCount() map[string]int {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	count := map[string]int{
		"engine": 0,
		"web":    0,
	}

	for _, client := range manager.clients {
		count[client.ClientType]++
	}

	return count
}

// 시뮬레이션 엔진 WebSocket Handler
// 엔진은 maze_update를 받아 자기 씬을 재구성한다.
func HandleEngineWebSocket(c *websocket.Conn) {
	client := &Client{
		Conn:       c,
		ClientType: "engine",
	}

	Manager.register <- client

	defer func() {
		Manager.unregister <- c
	}()

	for {
		var msg models.WebSocketMessage
		err := c.ReadJSON(&msg)
		if err != nil {
			log.Printf("엔진 메시지 읽기 오류: %v", err)
			break
		}

		// 타임스탬프 추가
		if msg.Timestamp == 0 {
			msg.Timestamp = time.Now().UnixMilli()
		}

		log.Printf("엔진 메시지: %s - %+v", msg.Type, msg.Data)
	}
}

// Web 클라이언트 WebSocket Handler
func HandleWebClientWebSocket(c *websocket.Conn) {
	client := &Client{
		Conn:       c,
		ClientType: "web",
	}

	Manager.register <- client

	defer func() {
		Manager.unregister <- c
	}()

	// 연결 확인 메시지 전송
	welcomeMsg := models.WebSocketMessage{
		Type: models.MessageTypeSystemInfo,
		Data: map[string]interface{}{
			"message":      "웹 클라이언트 연결됨",
			"connected_at": time.Now().Format(time.RFC3339),
		},
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.WriteJSON(welcomeMsg)

	for {
		var msg models.WebSocketMessage
		err := c.ReadJSON(&msg)
		if err != nil {
			log.Printf("웹 메시지 읽기 오류: %v", err)
			break
		}

		log.Printf("알 수 없는 메시지 타입: %s", msg.Type)
	}
}
