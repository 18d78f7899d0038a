package response

import "skill-swap-core/internal/usecase/queries"

type NotificationResponse struct {
	Level   string            `json:"level"`
	Topic   string            `json:"topic"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	At      int64             `json:"at"`
}

func FromNotificationViews(vs []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		res[i] = &NotificationResponse{Level: v.Level, Topic: v.Topic, Message: v.Message, Fields: v.Fields, At: v.At.Unix()}
	}
	return res
}
