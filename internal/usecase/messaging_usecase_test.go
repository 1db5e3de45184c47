package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safehaven/internal/domain/entity"
)

func TestStartThread(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChatRepo()
	uc := NewMessagingUseCase(repo)

	id1, err := uc.StartThread(ctx, "alice", "bob")
	require.NoError(t, err)

	// Same canonical key regardless of argument order, and no second thread.
	id2, err := uc.StartThread(ctx, "bob", "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice-bob", id1)
	assert.Equal(t, id1, id2)
	assert.Len(t, repo.threads, 1)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("message lands in an existing thread", func(t *testing.T) {
		repo := newFakeChatRepo()
		uc := NewMessagingUseCase(repo)

		_, err := uc.StartThread(ctx, "alice", "bob")
		require.NoError(t, err)

		require.NoError(t, uc.SendMessage(ctx, "bob", "alice", "hi"))

		messages, err := uc.GetMessages(ctx, "alice", "bob")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		for _, m := range messages {
			assert.Equal(t, "bob", m.Sender)
			assert.Equal(t, "alice", m.Receiver)
			assert.Equal(t, "hi", m.Message)
			assert.NotZero(t, m.Timestamp)
		}
	})

	t.Run("legacy unsorted thread key is still found", func(t *testing.T) {
		repo := newFakeChatRepo()
		require.NoError(t, repo.CreateThread(ctx, "zoe-adam", entity.NewThreadMetadata("zoe", "adam")))
		uc := NewMessagingUseCase(repo)

		require.NoError(t, uc.SendMessage(ctx, "adam", "zoe", "hello"))

		assert.Len(t, repo.threads["zoe-adam"].Messages, 1)
	})

	t.Run("missing thread drops the message without error", func(t *testing.T) {
		repo := newFakeChatRepo()
		uc := NewMessagingUseCase(repo)

		require.NoError(t, uc.SendMessage(ctx, "alice", "bob", "lost"))
		assert.Empty(t, repo.threads)
	})
}

func TestGetMessagesCreatesThread(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChatRepo()
	uc := NewMessagingUseCase(repo)

	messages, err := uc.GetMessages(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Empty(t, messages)

	_, ok := repo.threads["alice-bob"]
	assert.True(t, ok, "read against a missing thread should create the canonical thread")
}

func TestListThreadsForUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChatRepo()
	uc := NewMessagingUseCase(repo)

	_, err := uc.StartThread(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = uc.StartThread(ctx, "alice", "carol")
	require.NoError(t, err)
	_, err = uc.StartThread(ctx, "bob", "carol")
	require.NoError(t, err)

	require.NoError(t, uc.SendMessage(ctx, "alice", "bob", "first"))
	require.NoError(t, uc.SendMessage(ctx, "bob", "alice", "second"))

	// Force distinct timestamps for the most-recent pick.
	var latest int64
	for _, m := range repo.threads["alice-bob"].Messages {
		if m.Timestamp > latest {
			latest = m.Timestamp
		}
	}
	repo.threads["alice-bob"].Messages["m99"] = entity.Message{
		Sender: "bob", Receiver: "alice", Message: "newest", Timestamp: latest + 10,
	}

	summaries, err := uc.ListThreadsForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "bob", summaries["alice-bob"].OppositeUser)
	assert.Equal(t, "newest", summaries["alice-bob"].MostRecentMessage)
	assert.Equal(t, latest+10, summaries["alice-bob"].Date)

	assert.Equal(t, "carol", summaries["alice-carol"].OppositeUser)
	assert.Empty(t, summaries["alice-carol"].MostRecentMessage)
}
