package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRoomIsSymmetric(t *testing.T) {
	assert.Equal(t, ChatRoom("parent@home.net", "prof@campus.edu"), ChatRoom("prof@campus.edu", "parent@home.net"))
	assert.Equal(t, ChatRoom("Parent@Home.net", "prof@campus.edu"), ChatRoom("parent@home.net", "PROF@campus.edu"))
}

func TestUserRoomIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, UserRoom("someone@campus.edu"), UserRoom("Someone@Campus.EDU"))
	assert.Equal(t, "user:someone@campus.edu", UserRoom("someone@campus.edu"))
}
