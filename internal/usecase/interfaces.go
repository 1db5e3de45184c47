package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}

type FileStorage interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, objectPath string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}
