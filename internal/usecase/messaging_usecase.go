package usecase

import (
	"context"
	"fmt"
	"time"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/logger"
)

type MessagingUseCase struct {
	chatRepo repository.ChatRepository
}

func NewMessagingUseCase(chatRepo repository.ChatRepository) *MessagingUseCase {
	return &MessagingUseCase{
		chatRepo: chatRepo,
	}
}

// StartThread is idempotent: it returns the canonical (sorted) thread key,
// creating the thread only if it does not exist yet.
func (uc *MessagingUseCase) StartThread(ctx context.Context, userA, userB string) (string, error) {
	threadID := entity.ThreadID(userA, userB)

	exists, err := uc.chatRepo.ThreadExists(ctx, threadID)
	if err != nil {
		return "", err
	}
	if exists {
		return threadID, nil
	}

	if err := uc.chatRepo.CreateThread(ctx, threadID, entity.NewThreadMetadata(userA, userB)); err != nil {
		return "", err
	}

	logger.Info("Started a new chat between %s and %s", userA, userB)
	return threadID, nil
}

// resolveThread looks for an existing thread under both key orderings. Legacy
// threads were written with the participants in send order rather than sorted.
func (uc *MessagingUseCase) resolveThread(ctx context.Context, userA, userB string) (string, bool, error) {
	for _, threadID := range []string{
		fmt.Sprintf("%s-%s", userA, userB),
		fmt.Sprintf("%s-%s", userB, userA),
	} {
		exists, err := uc.chatRepo.ThreadExists(ctx, threadID)
		if err != nil {
			return "", false, err
		}
		if exists {
			return threadID, true, nil
		}
	}

	return "", false, nil
}

// SendMessage appends to an existing thread. When no thread exists under
// either key ordering the message is dropped with a log line; threads are not
// auto-created here.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, sender, receiver, text string) error {
	threadID, found, err := uc.resolveThread(ctx, sender, receiver)
	if err != nil {
		return err
	}
	if !found {
		logger.Warn("No existing chat found between %s and %s; message not sent", sender, receiver)
		return nil
	}

	message := entity.Message{
		Sender:    sender,
		Receiver:  receiver,
		Message:   text,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := uc.chatRepo.AppendMessage(ctx, threadID, message); err != nil {
		return err
	}

	logger.Info("Message sent from %s to %s", sender, receiver)
	return nil
}

// GetMessages is a one-shot fetch. When no thread exists under either key
// ordering, the canonical thread is created and an empty result is returned.
func (uc *MessagingUseCase) GetMessages(ctx context.Context, userA, userB string) (map[string]entity.Message, error) {
	threadID, found, err := uc.resolveThread(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if !found {
		if _, err := uc.StartThread(ctx, userA, userB); err != nil {
			return nil, err
		}
		return map[string]entity.Message{}, nil
	}

	return uc.chatRepo.GetMessages(ctx, threadID)
}

// ListThreadsForUser scans every thread and summarizes the ones the user
// participates in with the opposite user and the most recent message.
func (uc *MessagingUseCase) ListThreadsForUser(ctx context.Context, username string) (map[string]entity.ThreadSummary, error) {
	threads, err := uc.chatRepo.ListThreads(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]entity.ThreadSummary)
	for threadID, thread := range threads {
		participants := entity.ThreadParticipants(threadID)

		var oppositeUser string
		isParticipant := false
		for _, participant := range participants {
			if participant == username {
				isParticipant = true
			} else {
				oppositeUser = participant
			}
		}
		if !isParticipant {
			continue
		}

		var mostRecent entity.Message
		for _, message := range thread.Messages {
			if message.Timestamp > mostRecent.Timestamp {
				mostRecent = message
			}
		}

		summaries[threadID] = entity.ThreadSummary{
			OppositeUser:      oppositeUser,
			MostRecentMessage: mostRecent.Message,
			Date:              mostRecent.Timestamp,
		}
	}

	return summaries, nil
}
