package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/node"
	"github.com/ethereum/go-ethereum/rpc"
)

var wildcardHosts = []string{"*"}

// Handler serves a single JSON-RPC server on the root path, plus a JSON
// health endpoint on /healthz.
type Handler struct {
	appVersion string
	corsHosts  []string
	vHosts     []string

	log      log.Logger
	recorder rpc.Recorder

	srv *rpc.Server
	mux *http.ServeMux
}

func NewHandler(appVersion string, opts ...Option) *Handler {
	bs := &Handler{
		appVersion: appVersion,
		corsHosts:  wildcardHosts,
		vHosts:     wildcardHosts,
		log:        log.Root(),
		mux:        &http.ServeMux{},
	}
	for _, opt := range opts {
		opt(bs)
	}
	bs.log.Debug("Creating RPC handler")

	bs.srv = rpc.NewServer()
	if bs.recorder != nil {
		bs.srv.SetRecorder(bs.recorder)
	}
	if err := bs.srv.RegisterName("health", &healthzAPI{appVersion: appVersion}); err != nil {
		panic(fmt.Errorf("failed to setup default health RPC namespace: %w", err))
	}

	bs.mux.Handle("/healthz", defaultHealthzHandler(appVersion))
	bs.mux.Handle("/", node.NewHTTPHandlerStack(bs.srv, bs.corsHosts, bs.vHosts, nil))
	return bs
}

var _ http.Handler = (*Handler)(nil)

// ServeHTTP implements http.Handler
func (b *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	b.mux.ServeHTTP(writer, request)
}

// AddAPI adds a backend to the given RPC namespace.
func (b *Handler) AddAPI(api rpc.API) error {
	if err := b.srv.RegisterName(api.Namespace, api.Service); err != nil {
		return fmt.Errorf("failed to register API namespace %s: %w", api.Namespace, err)
	}
	b.log.Info("registered API", "namespace", api.Namespace)
	return nil
}

func (b *Handler) Stop() {
	b.srv.Stop()
}

type HealthzResponse struct {
	Version string `json:"version"`
}

func defaultHealthzHandler(appVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		_ = enc.Encode(&HealthzResponse{Version: appVersion})
	}
}

type healthzAPI struct {
	appVersion string
}

func (h *healthzAPI) Status() string {
	return h.appVersion
}
