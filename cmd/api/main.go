package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"feriadeofertas/internal/adapter/api"
	"feriadeofertas/internal/adapter/api/handler"
	apimiddleware "feriadeofertas/internal/adapter/api/middleware"
	"feriadeofertas/internal/adapter/api/router"
	"feriadeofertas/internal/adapter/repository"
	"feriadeofertas/internal/domain/service"
	"feriadeofertas/internal/infrastructure/firebase"
	"feriadeofertas/internal/infrastructure/storage"
	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/config"
	"feriadeofertas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewS3Client(
		ctx,
		cfg.StorageEndpoint,
		cfg.StorageRegion,
		cfg.StorageBucket,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StoragePublicDomain,
	)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	appLogger := logger.New(cfg.Environment)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	shopRepo := repository.NewFirestoreShopRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	var captionService service.CaptionService = service.NewAzureCaptionService(
		cfg.AIKey,
		cfg.AIResource,
		cfg.AIDeployment,
	)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, appLogger)
	shopUseCase := usecase.NewShopUseCase(shopRepo, userRepo, appLogger)
	productUseCase := usecase.NewProductUseCase(productRepo, shopRepo, storageClient, appLogger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, appLogger)

	handler.Setup(
		authUseCase,
		shopUseCase,
		productUseCase,
		orderUseCase,
		storageClient,
		captionService,
		appLogger,
		cfg.Version,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	router.Setup(e, authMiddleware, cfg.Environment)

	appLogger.Info("starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
