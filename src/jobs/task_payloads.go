package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeBroadcastDeliver = "broadcast:deliver"

type BroadcastPayload struct {
	MessageID string `json:"message_id"`
}

func NewBroadcastTask(messageID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BroadcastPayload{MessageID: messageID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBroadcastDeliver, payload), nil
}
