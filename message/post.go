package message

import "github.com/go-zoox/community/store"

type Post = store.Post

func (m *Message) Post() *Post {
	return m.post
}

func (m *Message) SetPost(post *Post) {
	m.post = post
}
