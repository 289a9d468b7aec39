package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Send_Disabled_For_Blank_Text(t *testing.T) {
	var in Input
	assert.False(t, in.CanSend())
	in.SetText("   \n\t")
	assert.False(t, in.CanSend())
	_, ok := in.Submit()
	assert.False(t, ok)
	assert.Equal(t, "   \n\t", in.Text())
}

func Test_Submit_Trims_And_Clears(t *testing.T) {
	var in Input
	in.SetText("  I have a headache \n")
	assert.True(t, in.CanSend())
	text, ok := in.Submit()
	assert.True(t, ok)
	assert.Equal(t, "I have a headache", text)
	assert.Empty(t, in.Text())
}

func Test_Enter_Submits(t *testing.T) {
	var in Input
	in.SetText("fever")
	action, text := in.HandleKey(Key{Name: Enter})
	assert.Equal(t, ActionSubmit, action)
	assert.Equal(t, "fever", text)
	assert.Empty(t, in.Text())
}

func Test_Shift_Enter_Inserts_Line_Break(t *testing.T) {
	var in Input
	in.SetText("line one")
	action, text := in.HandleKey(Key{Name: Enter, Shift: true})
	assert.Equal(t, ActionNewline, action)
	assert.Empty(t, text)
	assert.Equal(t, "line one\n", in.Text())
}

func Test_Enter_On_Blank_Does_Nothing(t *testing.T) {
	var in Input
	in.SetText("  ")
	action, _ := in.HandleKey(Key{Name: Enter})
	assert.Equal(t, ActionNone, action)
}

func Test_Other_Keys_Ignored(t *testing.T) {
	var in Input
	in.SetText("x")
	action, _ := in.HandleKey(Key{Name: "a"})
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, "x", in.Text())
}

func Test_Quick_Replies(t *testing.T) {
	assert.True(t, IsQuickReply("Not sure"))
	assert.False(t, IsQuickReply("Maybe"))
}
