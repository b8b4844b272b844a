package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/audit"
	"github.com/franqsuite/backoffice/pkg/authz"
	"github.com/franqsuite/backoffice/pkg/config"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
	"github.com/franqsuite/backoffice/pkg/server/store"
	gormstore "github.com/franqsuite/backoffice/pkg/server/store/gorm"
)

type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Config   *config.Config
	Sessions *middleware.SessionAuthenticator

	Resolver *authz.Resolver
	Guard    *authz.Guard
	Recorder *audit.Recorder

	PermissionsStore store.PermissionsStore
	RolesStore       store.RolesStore
	TablesStore      store.TablesStore
	UsersStore       store.UsersStore
	RecordsStore     store.RecordsStore
	AuditStore       store.AuditStore
	DeliveryStore    store.DeliveryStore
	HealthStore      store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	sessions *middleware.SessionAuthenticator,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	permissions := gormstore.NewPermissionsStore(db)
	auditStore := gormstore.NewAuditStore(db)

	resolver := authz.NewResolver(permissions)
	recorder := audit.NewRecorder(auditStore)

	return &Server{
		Router:   router,
		DB:       db,
		Config:   cfg,
		Sessions: sessions,

		Resolver: resolver,
		Guard:    authz.NewGuard(resolver, recorder),
		Recorder: recorder,

		PermissionsStore: permissions,
		RolesStore:       gormstore.NewRolesStore(db),
		TablesStore:      gormstore.NewTablesStore(db),
		UsersStore:       gormstore.NewUsersStore(db),
		RecordsStore:     gormstore.NewRecordsStore(db),
		AuditStore:       auditStore,
		DeliveryStore:    gormstore.NewDeliveryStore(db),
		HealthStore:      gormstore.NewHealthStore(db),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
