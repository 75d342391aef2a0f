package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	pronunciation "github.com/baditaflorin/go_pronunciation_similarity"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/warmup"
	"github.com/baditaflorin/go_pronunciation_similarity/pkg/prompt"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 10 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // transcripts are sentence-sized
	DefaultConcurrency    = 0         // 0 means fasthttp default
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent connections (0 = fasthttp default)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	foldAccents := flag.Bool("fold-accents", false, "Treat accented letters as their base letter")
	catalogFile := flag.String("catalog", "", "YAML prompt catalog (empty = built-in sentences)")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	logger, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting pronunciation scoring server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	catalog := prompt.DefaultCatalog()
	if *catalogFile != "" {
		catalog, err = prompt.LoadCatalogFile(*catalogFile)
		if err != nil {
			logger.Error("Failed to load prompt catalog", "error", err)
			os.Exit(1)
		}
	}

	engine, err := pronunciation.New(
		pronunciation.WithLogger(logger),
		pronunciation.WithAccentFolding(*foldAccents),
	)
	if err != nil {
		logger.Error("Failed to initialize scoring engine", "error", err)
		os.Exit(1)
	}
	if *warmUp {
		engine.WarmUp(context.Background(), warmup.DefaultWarmupConfig())
	}
	logger.Info("Scoring engine initialized successfully",
		"warm_up", *warmUp,
		"fold_accents", *foldAccents,
		"cpus", runtime.NumCPU(),
	)

	api := newAPI(engine, catalog, logger)
	server := &fasthttp.Server{
		Handler:               api.requestHandler,
		Name:                  "PronunciationServer",
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
