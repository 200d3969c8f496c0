package message

type Subscribe struct {
	// Boards filters the feed, empty means every board
	Boards []string `json:"boards"`
}

func (m *Message) Subscribe() *Subscribe {
	return m.subscribe
}

func (m *Message) SetSubscribe(subscribe *Subscribe) {
	m.subscribe = subscribe
}
