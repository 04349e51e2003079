package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"filedock/internal/adapter/api"
	"filedock/internal/adapter/api/handler"
	apimiddleware "filedock/internal/adapter/api/middleware"
	"filedock/internal/adapter/api/router"
	"filedock/internal/adapter/repository"
	domainrepo "filedock/internal/domain/repository"
	"filedock/internal/domain/service"
	"filedock/internal/infrastructure/queue"
	"filedock/internal/infrastructure/session"
	"filedock/internal/infrastructure/storage"
	"filedock/internal/usecase"
	"filedock/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var userRepo domainrepo.UserRepository
	var fileRepo domainrepo.FileRepository

	if cfg.FirebaseProject != "" {
		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		userRepo = repository.NewFirestoreUserRepository(firestoreClient)
		fileRepo = repository.NewFirestoreFileRepository(firestoreClient)
	} else {
		log.Printf("FIREBASE_PROJECT_ID not set, using in-memory repositories")
		userRepo = repository.NewMemoryUserRepository()
		fileRepo = repository.NewMemoryFileRepository()
	}

	var blobStorage service.BlobStorage
	switch cfg.StorageBackend {
	case "gcs":
		blobStorage, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
	default:
		blobStorage, err = storage.NewLocalClient(cfg.FolderPath)
		if err != nil {
			log.Fatalf("Failed to initialize local blob storage: %v", err)
		}
	}
	defer blobStorage.Close()

	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine(ctx, time.Hour)

	thumbnailQueue := queue.NewThumbnailQueue(int(cfg.QueueSize))
	defer thumbnailQueue.Close()

	worker := queue.NewWorker(thumbnailQueue, fileRepo, blobStorage)
	worker.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionStore, time.Duration(cfg.SessionTTL)*time.Second)
	userUseCase := usecase.NewUserUseCase(userRepo)
	fileUseCase := usecase.NewFileUseCase(fileRepo, blobStorage, thumbnailQueue)

	handler.Setup(authUseCase, userUseCase, fileUseCase)
	handler.SetupHealthHandler(userRepo, fileRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
