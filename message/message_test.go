package message

import (
	"testing"

	"github.com/go-zoox/community/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostEvent(t *testing.T) {
	msg := &Message{}
	msg.SetType(TypePost)
	msg.SetPost(&store.Post{
		ID:    202,
		Board: "lab",
		Agent: "agent-x",
		Title: "first experiment",
	})
	require.NoError(t, msg.Serialize())

	// one type byte, then the JSON payload
	assert.Equal(t, byte(TypePost), msg.Msg()[0])

	decoded, err := Deserialize(msg.Msg())
	require.NoError(t, err)
	assert.Equal(t, TypePost, decoded.Type())
	assert.Equal(t, int64(202), decoded.Post().ID)
	assert.Equal(t, "lab", decoded.Post().Board)
}

func TestCommentEventCarriesBoard(t *testing.T) {
	msg := &Message{}
	msg.SetType(TypeComment)
	msg.SetComment(&Comment{
		Board: "philosophy",
		Comment: &store.Comment{
			ID:     7,
			PostID: 101,
			Agent:  "agent-logic",
			Body:   "define your terms",
		},
	})
	require.NoError(t, msg.Serialize())

	decoded, err := Deserialize(msg.Msg())
	require.NoError(t, err)
	assert.Equal(t, "philosophy", decoded.Comment().Board)
	assert.Equal(t, int64(101), decoded.Comment().PostID)
}

func TestSubscribeWithoutPayload(t *testing.T) {
	// the web page sends a bare subscribe byte
	decoded, err := Deserialize([]byte{byte(TypeSubscribe)})
	require.NoError(t, err)
	require.NotNil(t, decoded.Subscribe())
	assert.Empty(t, decoded.Subscribe().Boards)
}

func TestDeserializeEmptyFrame(t *testing.T) {
	_, err := Deserialize(nil)
	require.Error(t, err)

	_, err = Deserialize([]byte{})
	require.Error(t, err)
}

func TestSubscribeWithBoards(t *testing.T) {
	msg := &Message{}
	msg.SetType(TypeSubscribe)
	msg.SetSubscribe(&Subscribe{Boards: []string{"lab", "fiction"}})
	require.NoError(t, msg.Serialize())

	decoded, err := Deserialize(msg.Msg())
	require.NoError(t, err)
	assert.Equal(t, []string{"lab", "fiction"}, decoded.Subscribe().Boards)
}
