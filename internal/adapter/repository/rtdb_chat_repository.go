package repository

import (
	"context"

	"firebase.google.com/go/v4/db"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/errors"
)

// rtdbChatRepository stores chat threads in the Firebase Realtime Database
// under the "chats" tree, one node per thread keyed by the participant pair.
type rtdbChatRepository struct {
	client *db.Client
}

func NewRTDBChatRepository(client *db.Client) repository.ChatRepository {
	return &rtdbChatRepository{
		client: client,
	}
}

func (r *rtdbChatRepository) ThreadExists(ctx context.Context, threadID string) (bool, error) {
	var metadata map[string]interface{}
	if err := r.client.NewRef("chats/"+threadID+"/metadata").Get(ctx, &metadata); err != nil {
		return false, errors.Internal("Failed to read chat thread", err)
	}

	return metadata != nil, nil
}

func (r *rtdbChatRepository) CreateThread(ctx context.Context, threadID string, metadata entity.ThreadMetadata) error {
	err := r.client.NewRef("chats/"+threadID).Set(ctx, map[string]entity.ThreadMetadata{
		"metadata": metadata,
	})
	if err != nil {
		return errors.Internal("Failed to create chat thread", err)
	}

	return nil
}

// AppendMessage pushes the message under a time-ordered, store-generated key.
func (r *rtdbChatRepository) AppendMessage(ctx context.Context, threadID string, message entity.Message) error {
	ref := r.client.NewRef("chats/" + threadID + "/messages")
	if _, err := ref.Push(ctx, message); err != nil {
		return errors.Internal("Failed to append chat message", err)
	}

	return nil
}

func (r *rtdbChatRepository) GetMessages(ctx context.Context, threadID string) (map[string]entity.Message, error) {
	var messages map[string]entity.Message
	if err := r.client.NewRef("chats/"+threadID+"/messages").Get(ctx, &messages); err != nil {
		return nil, errors.Internal("Failed to read chat messages", err)
	}

	if messages == nil {
		messages = map[string]entity.Message{}
	}

	return messages, nil
}

func (r *rtdbChatRepository) ListThreads(ctx context.Context) (map[string]entity.Thread, error) {
	var threads map[string]entity.Thread
	if err := r.client.NewRef("chats").Get(ctx, &threads); err != nil {
		return nil, errors.Internal("Failed to list chat threads", err)
	}

	if threads == nil {
		threads = map[string]entity.Thread{}
	}

	return threads, nil
}
