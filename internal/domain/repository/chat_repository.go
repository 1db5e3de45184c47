package repository

import (
	"context"

	"safehaven/internal/domain/entity"
)

type ChatRepository interface {
	ThreadExists(ctx context.Context, threadID string) (bool, error)
	CreateThread(ctx context.Context, threadID string, metadata entity.ThreadMetadata) error
	AppendMessage(ctx context.Context, threadID string, message entity.Message) error
	GetMessages(ctx context.Context, threadID string) (map[string]entity.Message, error)
	ListThreads(ctx context.Context) (map[string]entity.Thread, error)
}
