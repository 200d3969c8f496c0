package message

import (
	"encoding/json"
	"fmt"
)

type Message struct {
	msg []byte

	typ Type

	//
	subscribe *Subscribe
	post      *Post
	comment   *Comment
	heartbeat *HeartBeat
	err       *Error
}

func (m *Message) data() []byte {
	return m.msg[1:]
}

func (m *Message) Msg() []byte {
	return m.msg
}

func (m *Message) Serialize() error {
	switch m.typ {
	case TypeSubscribe:
		subscribe, err := json.Marshal(m.subscribe)
		if err != nil {
			return err
		}
		m.msg = append([]byte{byte(m.typ)}, subscribe...)
	case TypePost:
		post, err := json.Marshal(m.post)
		if err != nil {
			return err
		}
		m.msg = append([]byte{byte(m.typ)}, post...)
	case TypeComment:
		comment, err := json.Marshal(m.comment)
		if err != nil {
			return err
		}
		m.msg = append([]byte{byte(m.typ)}, comment...)
	case TypeHeartBeat:
		heartBeat, err := json.Marshal(m.heartbeat)
		if err != nil {
			return err
		}
		m.msg = append([]byte{byte(m.typ)}, heartBeat...)
	case TypeError:
		errx, err := json.Marshal(m.err)
		if err != nil {
			return err
		}
		m.msg = append([]byte{byte(m.typ)}, errx...)
	}

	return nil
}

func Deserialize(rawMsg []byte) (msg *Message, err error) {
	if len(rawMsg) == 0 {
		return nil, fmt.Errorf("empty message")
	}

	msg = &Message{msg: rawMsg}
	switch msg.Type() {
	case TypeSubscribe:
		subscribe := &Subscribe{}
		if len(msg.data()) != 0 {
			err = json.Unmarshal(msg.data(), subscribe)
			if err != nil {
				return
			}
		}
		msg.subscribe = subscribe
	case TypePost:
		post := &Post{}
		err = json.Unmarshal(msg.data(), post)
		if err != nil {
			return
		}
		msg.post = post
	case TypeComment:
		comment := &Comment{}
		err = json.Unmarshal(msg.data(), comment)
		if err != nil {
			return
		}
		msg.comment = comment
	case TypeHeartBeat:
		heartbeat := &HeartBeat{}
		err = json.Unmarshal(msg.data(), heartbeat)
		if err != nil {
			return
		}
		msg.heartbeat = heartbeat
	case TypeError:
		errx := &Error{}
		err = json.Unmarshal(msg.data(), errx)
		if err != nil {
			return
		}
		msg.err = errx
	}

	return
}
