package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeNotification is for pushing a seller notification.
	MessageTypeNotification MessageType = "notification"

	// MessageTypeCartUpdate is for pushing a buyer's cart membership change.
	MessageTypeCartUpdate MessageType = "cartUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// NotificationPayload is the payload for a notification message.
type NotificationPayload struct {
	SellerID       string `json:"seller_id"`
	NotificationID string `json:"notification_id"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

// CartUpdatePayload is the payload for a cartUpdate message.
type CartUpdatePayload struct {
	UserID string   `json:"user_id"`
	Cart   []string `json:"cart"`
}
