package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"safehaven/pkg/errors"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// CreateUser registers a credential with Firebase Auth. Email uniqueness is
// enforced by the provider; a duplicate surfaces as an EMAIL_TAKEN error.
func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", errors.EmailTaken(email, err)
		}
		return "", err
	}

	return user.UID, nil
}
