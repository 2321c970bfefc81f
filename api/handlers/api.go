package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medcare/medcare-api/api"
	"github.com/medcare/medcare-api/api/scheduler"
	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/databases"
)

// App stores the router, stores and scheduler so they can be reused
type App struct {
	Router     *mux.Router
	Config     config.Config
	UserDB     databases.UserDatabase
	ReminderDB databases.RefillReminderDatabase
	ScheduleDB databases.ScheduleDatabase
	Scheduler  *scheduler.Scheduler
	Hub        *NotificationHub
}

// Initialize builds the stores, scheduler and router. The in-memory stores
// are the default; setting DB_URI swaps in the Mongo-backed ones behind the
// same interfaces.
func (a *App) Initialize() {
	if a.Config.URL != "" {
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			zap.S().Fatalw("failed to create mongo client", "error", err)
		}
		if err := client.Connect(); err != nil {
			zap.S().Fatalw("failed to connect to mongo", "error", err)
		}
		dbHelper := databases.NewDatabase(&a.Config, client)
		a.UserDB = databases.NewUserDatabase(dbHelper)
		a.ReminderDB = databases.NewRefillReminderDatabase(dbHelper)
		a.ScheduleDB = databases.NewScheduleDatabase(dbHelper)
		zap.S().Infow("using mongo-backed stores", "database", a.Config.DatabaseName)
	} else {
		a.UserDB = databases.NewMemoryUserDatabase()
		a.ReminderDB = databases.NewMemoryRefillReminderDatabase()
		a.ScheduleDB = databases.NewMemoryScheduleDatabase()
		zap.S().Info("using in-memory stores")
	}

	a.Hub = NewNotificationHub()

	notifiers := scheduler.MultiNotifier{
		scheduler.LogNotifier{},
		scheduler.HubNotifier{Hub: a.Hub},
	}
	if a.Config.SendgridAPIKey != "" {
		notifiers = append(notifiers, scheduler.EmailNotifier{
			APIKey:    a.Config.SendgridAPIKey,
			FromEmail: a.Config.SendgridFrom,
		})
	}

	a.Scheduler = scheduler.NewScheduler(a.ReminderDB, a.ScheduleDB, notifiers)
	a.Scheduler.Start()

	a.Router = a.New()
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for the session endpoints
	m := api.MiddlewareDB{DB: a.UserDB}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.Recovery)

	u := User{DB: a.UserDB, JWTSecret: a.Config.JWTSecret}
	med := Medicine{}
	refill := Refill{DB: a.ReminderDB}
	schedule := Medication{DB: a.ScheduleDB, Triggers: a.Scheduler}

	r.HandleFunc("/api/health", healthCheckHandler).Methods("GET")

	r.HandleFunc("/api/auth/register", u.RegisterHandler).Methods("POST")
	r.HandleFunc("/api/auth/login", u.LoginHandler).Methods("POST")
	r.Handle("/api/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	r.Handle("/api/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	r.HandleFunc("/api/medicine/{name}", med.MedicineInfoHandler).Methods("GET")

	r.HandleFunc("/api/schedule-refill", refill.CreateRefillReminderHandler).Methods("POST")
	r.HandleFunc("/api/refill-reminders", refill.ListRefillRemindersHandler).Methods("GET")
	r.HandleFunc("/api/refill-reminders/{id}", refill.DeleteRefillReminderHandler).Methods("DELETE")

	r.HandleFunc("/api/schedule-medication", schedule.CreateScheduleHandler).Methods("POST")
	r.HandleFunc("/api/medication-schedules", schedule.ListSchedulesHandler).Methods("GET")
	r.HandleFunc("/api/medication-schedules/{id}/dose", schedule.MarkDoseTakenHandler).Methods("PUT")
	r.HandleFunc("/api/medication-schedules/{id}", schedule.DeleteScheduleHandler).Methods("DELETE")

	r.HandleFunc("/ws/notifications", a.Hub.ServeWebSocket)

	r.NotFoundHandler = http.HandlerFunc(routeNotFoundHandler)

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"message":"MedCare API is running!"}`)
}

func routeNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, `{"message":"Route not found"}`)
}
