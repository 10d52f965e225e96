package main

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"numbers-dictation-platform/backend/internal/apigateway"
	"numbers-dictation-platform/backend/internal/auth"
	"numbers-dictation-platform/backend/internal/coreengine/datasetgenerator"
	"numbers-dictation-platform/backend/internal/coreengine/sessionengine"
	"numbers-dictation-platform/backend/internal/datasetmanagement"
	"numbers-dictation-platform/backend/internal/datastore"
	"numbers-dictation-platform/backend/internal/logging"
	"numbers-dictation-platform/backend/internal/objectstore"
	"numbers-dictation-platform/backend/internal/repository"
	"numbers-dictation-platform/backend/internal/sessionmanagement"
	"numbers-dictation-platform/backend/internal/vendoradapters"
)

func main() {
	// Local development keeps its settings in a .env file; production
	// injects real environment variables.
	_ = godotenv.Load()

	log, err := logging.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Manifest store: postgres when a DSN is configured, sqlite otherwise.
	var store datastore.ManifestStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		store, err = datastore.NewPostgresManifestStore(dsn)
		if err != nil {
			log.Fatal("failed to open postgres manifest store", "error", err.Error())
		}
		log.Info("using postgres manifest store")
	} else {
		dbPath := os.Getenv("SQLITE_PATH")
		if dbPath == "" {
			dbPath = "numbers_dictation.db"
		}
		store, err = datastore.NewSQLiteManifestStore(dbPath)
		if err != nil {
			log.Fatal("failed to open sqlite manifest store", "error", err.Error())
		}
		log.Info("using sqlite manifest store", "path", dbPath)
	}
	defer store.Close()

	// Audio storage: MinIO when configured, in-memory for local runs.
	var audioStorage objectstore.AudioStorage
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		audioStorage, err = objectstore.NewMinioAudioStorage(context.Background(), objectstore.MinioAudioStorageConfig{
			Endpoint:        endpoint,
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("MINIO_BUCKET_NAME"),
			UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		}, log)
		if err != nil {
			log.Fatal("failed to initialize MinIO audio storage", "error", err.Error())
		}
	} else {
		log.Warn("MINIO_ENDPOINT not set; audio is held in memory and lost on restart")
		audioStorage = objectstore.NewMemoryAudioStorage()
	}

	// Exercise repository: a published dataset over HTTP when a base URL
	// is configured, the local manifest store otherwise.
	var repo repository.ExerciseRepository
	if baseURL := os.Getenv("NUMBERS_DATASET_BASE_URL"); baseURL != "" {
		version := os.Getenv("NUMBERS_DATASET_VERSION")
		if version == "" {
			version = datasetgenerator.CurrentWeekTag()
		}
		lang := os.Getenv("NUMBERS_DATASET_LANG")
		if lang == "" {
			lang = "fr"
		}
		repo, err = repository.NewHTTPExerciseRepository(baseURL, version, lang, log)
		if err != nil {
			log.Fatal("failed to build HTTP exercise repository", "error", err.Error())
		}
		log.Info("serving exercises from remote dataset", "version", version)
	} else {
		repo = repository.NewStoreRepository(store)
	}

	// Sentence author and speech synthesizer fall back to deterministic
	// mocks when the real services are not configured.
	var author vendoradapters.SentenceAuthor
	if apiKey := os.Getenv("ARK_API_KEY"); apiKey != "" {
		author, err = vendoradapters.NewArkSentenceAuthor(vendoradapters.ArkSentenceAuthorConfig{
			APIKey: apiKey,
			Model:  os.Getenv("ARK_MODEL"),
		}, log)
		if err != nil {
			log.Fatal("failed to build Ark sentence author", "error", err.Error())
		}
	} else {
		log.Warn("ARK_API_KEY not set; using the mock sentence author")
		author = &vendoradapters.MockSentenceAuthor{}
	}

	var synthesizer vendoradapters.SpeechSynthesizer
	if speechKey := os.Getenv("AZURE_SPEECH_KEY"); speechKey != "" {
		synthesizer, err = vendoradapters.NewMicrosoftTTSAdapter(vendoradapters.MicrosoftTTSAdapterConfig{
			SubscriptionKey: speechKey,
			Region:          os.Getenv("AZURE_SPEECH_REGION"),
		}, log)
		if err != nil {
			log.Fatal("failed to build Azure TTS adapter", "error", err.Error())
		}
	} else {
		log.Warn("AZURE_SPEECH_KEY not set; using the mock speech synthesizer")
		synthesizer = &vendoradapters.MockSpeechSynthesizer{}
	}

	seed := time.Now().UnixNano()
	if raw := os.Getenv("DATASET_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("DATASET_SEED is not a valid integer", "value", raw)
		}
		seed = parsed
	}

	generator, err := datasetgenerator.NewGenerator(
		author,
		synthesizer,
		audioStorage,
		store,
		rand.New(rand.NewSource(seed)),
		log,
		datasetgenerator.GeneratorConfig{},
	)
	if err != nil {
		log.Fatal("failed to build dataset generator", "error", err.Error())
	}

	engine := sessionengine.NewEngine(repo, rand.New(rand.NewSource(time.Now().UnixNano())))
	sessions := sessionengine.NewInMemorySessionStore()

	authService := auth.NewService(auth.Config{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}, log)

	router := apigateway.SetupRouter(apigateway.RouterDeps{
		Auth:     authService,
		Sessions: sessionmanagement.NewSessionHandlers(engine, sessions, audioStorage, os.Getenv("NUMBERS_AUDIO_BASE_URL"), log),
		Datasets: datasetmanagement.NewDatasetHandlers(generator, store, log),
	})

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}
	log.Info("starting server", "port", serverPort)
	if err := router.Run(":" + serverPort); err != nil {
		log.Fatal("server exited", "error", err.Error())
	}
}
