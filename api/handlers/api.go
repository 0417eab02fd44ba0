package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/api/scheduler"
	"github.com/signbridge/interview-api/config"
	"github.com/signbridge/interview-api/databases"
	"github.com/signbridge/interview-api/models"
)

// validate checks request bodies against their struct tags
var validate = validator.New()

// App stores the router, db connection and live hub, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Hub       *realtime.Hub
	Scheduler *scheduler.Scheduler

	dbHelper   databases.DatabaseHelper
	dbClient   databases.ClientHelper
	dispatcher *realtime.Dispatcher
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	st := Status{DB: databases.NewStatusCheckDatabase(a.dbHelper)}
	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	s := Session{DB: databases.NewSessionDatabase(a.dbHelper), UDB: databases.NewUserDatabase(a.dbHelper), Dispatcher: a.dispatcher}
	ws := Websocket{Hub: a.Hub, Dispatcher: a.dispatcher}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/status", http.HandlerFunc(st.StatusCreateHandler)).Methods("POST")
	apiCreate.Handle("/status", http.HandlerFunc(st.StatusListHandler)).Methods("GET")

	apiCreate.Handle("/users", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/users/{user_id}", http.HandlerFunc(u.UserHandler)).Methods("GET")

	apiCreate.Handle("/sessions", http.HandlerFunc(s.SessionCreateHandler)).Methods("POST")
	apiCreate.Handle("/sessions/{session_id}", http.HandlerFunc(s.SessionHandler)).Methods("GET")
	apiCreate.Handle("/sessions/{session_id}/join", http.HandlerFunc(s.JoinSessionHandler)).Methods("POST")
	apiCreate.Handle("/sessions/{session_id}/messages", http.HandlerFunc(s.CreateMessageHandler)).Methods("POST")

	apiCreate.HandleFunc("/", rootHandler).Methods("GET")

	r.Handle("/ws/{user_id}", http.HandlerFunc(ws.ServeWS)).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbClient = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("interview-api has connected to the database")

	a.Hub = realtime.NewHub()
	a.dispatcher = &realtime.Dispatcher{
		Hub:    a.Hub,
		Router: &realtime.Router{DB: databases.NewSessionDatabase(a.dbHelper)},
	}

	a.Scheduler = scheduler.New(databases.NewStatusCheckDatabase(a.dbHelper), a.Hub)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

// Shutdown stops background jobs and disconnects the database client
func (a *App) Shutdown(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.dbClient != nil {
		if err := a.dbClient.Disconnect(ctx); err != nil {
			zap.S().With(err).Error("failed to disconnect from database")
		}
	}
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.RootResponse{
		Message: "Sign Language Interview Tool API",
	})
	_, _ = io.WriteString(w, string(b))
}
