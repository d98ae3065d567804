package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"Caudal/internal/auth"
	"Caudal/internal/calc/fittings"
	"Caudal/internal/calc/friction"
	"Caudal/internal/calc/pipe"
	"Caudal/internal/calc/premium/batch"
	"Caudal/internal/calc/premium/exporter"
	"Caudal/internal/calc/premium/importer"
	"Caudal/internal/calc/premium/recommend"
	"Caudal/internal/calc/premium/sizing"
	"Caudal/internal/calc/report"
	"Caudal/internal/profile"
	"Caudal/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdatePreferences).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	frictionH := &friction.Handler{}
	pipeH := &pipe.Handler{}
	fittingsH := &fittings.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exporterH := &exporter.Handler{}
	sizingH := &sizing.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/friction/calc", frictionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/calc", pipeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipe/series", pipeH.Series).Methods("POST")
	secureApi.HandleFunc("/tools/fittings/calc", fittingsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/fittings/list", fittingsH.List).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools-premium/batch/series", batchH.Series).Methods("POST")
	secureApi.HandleFunc("/tools-premium/import/series", importerH.Series).Methods("POST")
	secureApi.HandleFunc("/tools-premium/export/series", exporterH.Series).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sizing/diameter", sizingH.Diameter).Methods("POST")
	secureApi.HandleFunc("/tools-premium/recommend/method", recommendH.Correlation).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
