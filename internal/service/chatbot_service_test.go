package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestChatbotServiceKeywordReplies(t *testing.T) {
	svc := NewChatbotService(zap.NewNop())
	ctx := context.Background()

	assert.Contains(t, svc.Reply(ctx, "where can I find a book?"), "library section")
	assert.Contains(t, svc.Reply(ctx, "What is my ATTENDANCE?"), "75%")
	assert.Contains(t, svc.Reply(ctx, "tell me about the leaderboard"), "top performing students")
}

func TestChatbotServiceSubjectOverridesWin(t *testing.T) {
	svc := NewChatbotService(zap.NewNop())
	ctx := context.Background()

	// "python" outranks the generic course keyword.
	assert.Contains(t, svc.Reply(ctx, "which course teaches python?"), "Python is a great programming language")
	assert.Contains(t, svc.Reply(ctx, "help with calculus please"), "Mathematics requires practice")
	assert.Contains(t, svc.Reply(ctx, "when is the assignment deadline?"), "due dates")
}

func TestChatbotServiceFallback(t *testing.T) {
	svc := NewChatbotService(zap.NewNop())

	reply := svc.Reply(context.Background(), "what is the meaning of life?")
	assert.Equal(t, chatbotFallback, reply)
}
