package message

import "github.com/go-zoox/community/store"

type Comment struct {
	// Board is the board of the commented post, for feed filtering
	Board string `json:"board"`
	//
	*store.Comment
}

func (m *Message) Comment() *Comment {
	return m.comment
}

func (m *Message) SetComment(comment *Comment) {
	m.comment = comment
}
