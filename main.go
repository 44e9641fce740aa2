package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"modelpickd/pkg/catalog"
	"modelpickd/pkg/engine"
	"modelpickd/pkg/gpu"
	"modelpickd/pkg/hardware"
	"modelpickd/pkg/metrics"
	"modelpickd/pkg/middleware"
	"modelpickd/pkg/routing"
	"modelpickd/pkg/selection"
	"modelpickd/pkg/session"
	"modelpickd/pkg/tailbuffer"
)

const (
	// statusTailLines is the number of recent status lines retained for the
	// status endpoint.
	statusTailLines = 32
	// httpClientTimeout bounds catalog, leaderboard, and engine requests.
	httpClientTimeout = 15 * time.Second
)

var log = logrus.New()

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sockName := os.Getenv("MODELPICKD_SOCK")
	if sockName == "" {
		sockName = "modelpickd.sock"
	}

	// Load the GPU reference database.
	var db *gpu.Database
	var err error
	if databasePath := os.Getenv("GPU_DATABASE_PATH"); databasePath != "" {
		db, err = gpu.LoadFile(databasePath)
		if err != nil {
			log.Fatalf("Failed to load GPU database from %s: %v", databasePath, err)
		}
	} else {
		db, err = gpu.LoadEmbedded()
		if err != nil {
			log.Fatalf("Failed to load embedded GPU database: %v", err)
		}
	}
	log.Infof("GPU database loaded with %d entries", db.Len())

	httpClient := &http.Client{Timeout: httpClientTimeout}

	resolver := gpu.NewResolver(log.WithField("component", "resolver"), db)
	catalogClient := catalog.NewClient(
		log.WithField("component", "catalog"),
		httpClient,
		os.Getenv("MODEL_CATALOG_URL"),
	)
	ranker := catalog.NewRanker(log.WithField("component", "ranker"), catalogClient)
	leaderboard := catalog.NewLeaderboard(
		log.WithField("component", "leaderboard"),
		httpClient,
		os.Getenv("MODEL_LEADERBOARD_URL"),
	)

	recorder := metrics.NewRecorder()
	policy := selection.NewPolicy(
		log.WithField("component", "selection"),
		resolver,
		ranker,
		leaderboard,
		recorder,
	)
	selectionManager := selection.NewManager(
		log.WithField("component", "selection"),
		resolver,
		ranker,
		policy,
	)

	chatsPath := os.Getenv("CHATS_PATH")
	if chatsPath == "" {
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get user home directory: %v", err)
		}
		chatsPath = filepath.Join(userHomeDir, ".modelpickd", "chats.json")
	}
	store, err := session.NewStore(log.WithField("component", "session"), chatsPath)
	if err != nil {
		log.Fatalf("Failed to open chat store: %v", err)
	}
	sessionManager := session.NewManager(log.WithField("component", "session"), store)

	status := tailbuffer.NewStatusBuffer(statusTailLines)
	status.WriteLine("Starting up")

	router := routing.NewNormalizedServeMux()
	for _, route := range selectionManager.GetRoutes() {
		router.Handle(route, selectionManager)
	}
	for _, route := range sessionManager.GetRoutes() {
		router.Handle(route, sessionManager)
	}
	router.HandleFunc("GET /picker/v1/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{"status": status.Status(), "tail": status.Lines()}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Warnln("Error while encoding status response:", err)
		}
	})

	if os.Getenv("DISABLE_METRICS") != "1" {
		router.Handle("GET /metrics", recorder.Handler())
		log.Info("Metrics endpoint enabled at /metrics")
	} else {
		log.Info("Metrics endpoint disabled")
	}

	// Probe the host and perform the initial selection in the background so
	// the HTTP surface comes up immediately.
	go initialSelection(ctx, policy, status, httpClient)

	server := &http.Server{Handler: middleware.CORS(nil, router)}
	serverErrors := make(chan error, 1)

	// Check if we should use a TCP port instead of a Unix socket.
	tcpPort := os.Getenv("MODELPICKD_PORT")
	if tcpPort != "" {
		log.Infof("Listening on TCP port %s", tcpPort)
		server.Addr = ":" + tcpPort
		go func() {
			serverErrors <- server.ListenAndServe()
		}()
	} else {
		if err := os.Remove(sockName); err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to remove existing socket: %v", err)
			}
		}
		ln, err := net.ListenUnix("unix", &net.UnixAddr{Name: sockName, Net: "unix"})
		if err != nil {
			log.Fatalf("Failed to listen on socket: %v", err)
		}
		log.Infof("Listening on socket %s", sockName)
		go func() {
			serverErrors <- server.Serve(ln)
		}()
	}

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Errorf("Server error: %v", err)
		}
	case <-ctx.Done():
		log.Infoln("Shutdown signal received")
		log.Infoln("Shutting down the server")
		if err := server.Close(); err != nil {
			log.Errorf("Server shutdown error: %v", err)
		}
	}
	log.Infoln("modelpickd stopped")
}

// initialSelection probes the host hardware, selects a model for it, and,
// when an engine endpoint is configured, loads the chosen model. Progress
// and outcomes are reported through the status buffer.
func initialSelection(ctx context.Context, policy *selection.Policy, status *tailbuffer.StatusBuffer, httpClient *http.Client) {
	probe := hardware.NewProbe(log.WithField("component", "hardware"))
	info, err := probe.Run()
	if err != nil {
		status.WriteLine("Hardware probe failed: " + err.Error())
		return
	}
	status.WriteLine("Detected GPU: " + info.GPUName)

	tier := hardware.EstimateTier(info.TotalRAMMB)
	if value := os.Getenv("GPU_TIER"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 || parsed > 3 {
			log.Fatalf("Invalid GPU_TIER value: %s", value)
		}
		tier = parsed
	}

	mode, err := catalog.ParseTradeoffMode(os.Getenv("TRADEOFF_MODE"))
	if err != nil {
		log.Fatalf("Invalid TRADEOFF_MODE value: %v", err)
	}

	result, err := policy.Select(ctx, selection.Request{
		GPUName: info.GPUName,
		Tier:    tier,
		Mode:    mode,
	})
	if err != nil {
		status.WriteLine("Selection failed: " + err.Error())
		return
	}
	status.WriteLine("Selected model: " + result.ModelID)

	engineURL := os.Getenv("ENGINE_URL")
	if engineURL == "" {
		return
	}
	options, err := engine.ParseArgs(os.Getenv("ENGINE_ARGS"), engine.DefaultOptions())
	if err != nil {
		log.Fatalf("Invalid ENGINE_ARGS value: %v", err)
	}
	e := engine.NewOpenAIEngine(log.WithField("component", "engine"), httpClient, engineURL, options)
	err = e.Load(ctx, result.ModelID, func(fraction float64, step string) {
		status.WriteLine(step)
		log.Infof("Load progress %.0f%%: %s", fraction*100, step)
	})
	if err != nil {
		status.WriteLine("Model load failed: " + err.Error())
		return
	}
	status.WriteLine("Ready")
}
