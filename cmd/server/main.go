package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oviohub/airbridge"
	"github.com/oviohub/airbridge/internal"
)

// Server represents the HTTP relay server
type Server struct {
	mapper     rowMapper
	relay      submitter
	formServer string
	mux        *chi.Mux
}

// NewServer creates a new Server instance
func NewServer(mapper rowMapper, relay submitter, formServer string) *Server {
	return &Server{
		mapper:     mapper,
		relay:      relay,
		formServer: formServer,
		mux:        chi.NewRouter(),
	}
}

// RegisterRoutes registers all routes and their middleware
func (s *Server) RegisterRoutes() {
	s.mux.Use(requestID)
	s.mux.Use(requestLogger)
	s.mux.Use(recoverer)

	s.mux.Group(func(r chi.Router) {
		r.Use(cors(s.formServer))
		r.Use(originFilter(s.formServer))
		r.Post("/submit", s.handleSubmit)
		// Preflight requests are answered inside the cors middleware.
		r.Options("/submit", func(w http.ResponseWriter, r *http.Request) {})
	})
}

// Start starts the HTTP server on the given port
func (s *Server) Start(port int) error {
	zap.S().Infow("starting server", "port", port)
	return http.ListenAndServe(":"+strconv.Itoa(port), s.mux)
}

func main() {
	// Load configuration from a .env file when one is present.
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	config := loadConfig()
	if err := config.Validate(); err != nil {
		sugar.Fatalf("invalid configuration: %v", err)
	}

	vocab := internal.DefaultVocabulary()
	if config.Vocab.File != "" {
		vocab, err = internal.LoadVocabulary(config.Vocab.File)
		if err != nil {
			sugar.Fatalf("failed to load vocabulary: %v", err)
		}
		sugar.Infow("loaded vocabulary", "file", config.Vocab.File)
	}

	client := internal.NewAirtableClient(config.Airtable.BaseURL, config.Airtable.APIKey, config.Airtable.BaseKey)

	skills := internal.NewLinkedRecords("", true, func() airbridge.TableSearcher {
		return client.Table(config.Airtable.SkillsTable)
	})
	causes := internal.NewLinkedRecords("", true, func() airbridge.TableSearcher {
		return client.Table(config.Airtable.CausesTable)
	})

	mapper := internal.NewVolunteerMapper(vocab, skills, causes)
	relay := airbridge.NewRelay(client.Table(config.Airtable.TableName))

	server := NewServer(mapper, relay, config.Server.FormServer)
	server.RegisterRoutes()

	if err := server.Start(config.Server.Port); err != nil {
		sugar.Fatalf("server error: %v", err)
	}
}

// loadConfig builds the configuration from environment variables.
func loadConfig() *airbridge.Config {
	config := airbridge.DefaultConfig()
	config.Airtable.BaseURL = getEnv("AIRTABLE_BASE_URL", config.Airtable.BaseURL)
	config.Airtable.APIKey = getEnv("AIRTABLE_API_KEY", "")
	config.Airtable.BaseKey = getEnv("AIRTABLE_BASE_KEY", "")
	config.Airtable.TableName = getEnv("AIRTABLE_TABLE_NAME", "")
	config.Airtable.SkillsTable = getEnv("AIRTABLE_SKILLS_TABLE", config.Airtable.SkillsTable)
	config.Airtable.CausesTable = getEnv("AIRTABLE_CAUSES_TABLE", config.Airtable.CausesTable)
	config.Server.Port = getEnvInt("PORT", config.Server.Port)
	config.Server.FormServer = getEnv("FORM_SERVER", "")
	config.Vocab.File = getEnv("VOCAB_FILE", "")
	return config
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a fallback default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
