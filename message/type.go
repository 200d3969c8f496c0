package message

type Type byte

const (
	// TypeSubscribe ...
	TypeSubscribe Type = '0'

	// TypePost ...
	TypePost Type = '1'

	// TypeComment ...
	TypeComment Type = '2'

	// TypeHeartBeat ...
	TypeHeartBeat Type = '8'

	// TypeError ...
	TypeError Type = '9'
)

func (m *Message) Type() Type {
	return Type(m.msg[0])
}

func (m *Message) SetType(t Type) {
	m.typ = t
}
