package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"safehaven/internal/adapter/api"
	"safehaven/internal/adapter/api/handler"
	"safehaven/internal/adapter/api/router"
	"safehaven/internal/adapter/repository"
	"safehaven/internal/domain/service"
	"safehaven/internal/infrastructure/firebase"
	"safehaven/internal/infrastructure/storage"
	"safehaven/internal/usecase"
	"safehaven/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production), file path
	// fallback for local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	rtdbClient, err := firebaseApp.Database(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Realtime Database: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	chatRepo := repository.NewRTDBChatRepository(rtdbClient)
	checkoutRepo := repository.NewFirestoreCheckoutRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)
	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey)

	identityUseCase := usecase.NewIdentityUseCase(userRepo, firebaseAuthClient)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, storageClient, identityUseCase)
	messagingUseCase := usecase.NewMessagingUseCase(chatRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(
		checkoutRepo,
		userRepo,
		catalogUseCase,
		messagingUseCase,
		paymentService,
		cfg.BaseURL,
		cfg.SystemAccount,
	)

	handler.Setup(identityUseCase, catalogUseCase, messagingUseCase, checkoutUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
