// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"careerguide-workers/internal/common/aws"
	"careerguide-workers/internal/common/camunda"
	"careerguide-workers/internal/common/config"
	"careerguide-workers/internal/common/database"
	"careerguide-workers/internal/common/logger"
	"careerguide-workers/internal/common/observability"
	"careerguide-workers/internal/refdata"
	"careerguide-workers/pkg/registry"

	// Assessment workers
	as "careerguide-workers/internal/workers/assessment/analyze-skills"
	cp "careerguide-workers/internal/workers/assessment/classify-personality"

	// Guidance workers
	ar "careerguide-workers/internal/workers/guidance/assemble-report"
	fc "careerguide-workers/internal/workers/guidance/find-colleges"
	fm "careerguide-workers/internal/workers/guidance/forecast-market"
	gr "careerguide-workers/internal/workers/guidance/generate-roadmap"
	rc "careerguide-workers/internal/workers/guidance/recommend-careers"

	// Safety worker
	dsc "careerguide-workers/internal/workers/safety/detect-scam-content"

	// Communication worker
	sn "careerguide-workers/internal/workers/communication/send-notification"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var camClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	var workers []*camunda.Worker

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch (optional, audit trail only) ---
	var esClient *database.ElasticsearchClient
	if cfg.Database.Elasticsearch.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Reference data store ---
	var store refdata.Store
	switch cfg.Guidance.CatalogSource {
	case "file":
		catalog, err := registry.LoadCatalog(filepath.Join(cfg.Guidance.CatalogDir, "catalog.json"))
		if err != nil {
			zapLog.Fatal("catalog file load failed", zap.Error(err))
		}
		store = catalog.ToStore()
		zapLog.Info("Reference catalog loaded from file", zap.String("version", catalog.Version))
	default:
		store = refdata.NewSQLStore(
			pg.DB,
			redis.Client,
			time.Duration(cfg.Guidance.RefdataCacheTTL)*time.Millisecond,
			log,
		)
		zapLog.Info("Reference catalog served from postgres")
	}

	// --- Notification channel clients ---
	var emailSender sn.EmailSender
	var smsSender sn.SMSSender
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		emailSender = sesClient
	}
	if cfg.Notifications.SMS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		smsSender = snsClient
	}

	// --- Register Workers ---

	// Assessment
	if cfg.Workers[as.TaskType].Enabled {
		handler := as.NewHandler(
			&as.Config{
				Timeout: time.Duration(cfg.Workers[as.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, as.TaskType, cfg.Workers[as.TaskType], handler, obs, zapLog))
	}

	if cfg.Workers[cp.TaskType].Enabled {
		handler := cp.NewHandler(
			&cp.Config{
				Timeout: time.Duration(cfg.Workers[cp.TaskType].Timeout) * time.Millisecond,
			},
			store, log,
		)
		workers = append(workers, startWorker(zeebeClient, cp.TaskType, cfg.Workers[cp.TaskType], handler, obs, zapLog))
	}

	// Guidance
	if cfg.Workers[rc.TaskType].Enabled {
		rcConfig := rc.LoadConfig()
		rcConfig.Timeout = time.Duration(cfg.Workers[rc.TaskType].Timeout) * time.Millisecond
		if cfg.Guidance.DefaultTopN > 0 {
			rcConfig.DefaultTopN = cfg.Guidance.DefaultTopN
		}
		handler, err := rc.NewHandler(rcConfig, store, log)
		if err != nil {
			zapLog.Fatal("failed to create recommend-careers handler", zap.Error(err))
		}
		workers = append(workers, startWorker(zeebeClient, rc.TaskType, cfg.Workers[rc.TaskType], handler, obs, zapLog))
	}

	if cfg.Workers[fm.TaskType].Enabled {
		handler := fm.NewHandler(
			&fm.Config{
				Timeout:         time.Duration(cfg.Workers[fm.TaskType].Timeout) * time.Millisecond,
				Seed:            cfg.Guidance.ForecastSeed,
				BaseYear:        cfg.Guidance.ForecastBaseYear,
				Years:           cfg.Guidance.ForecastYears,
				DefaultCurrency: cfg.Guidance.DefaultCurrency,
			},
			store, log,
		)
		workers = append(workers, startWorker(zeebeClient, fm.TaskType, cfg.Workers[fm.TaskType], handler, obs, zapLog))
	}

	if cfg.Workers[fc.TaskType].Enabled {
		fcConfig := fc.LoadConfig()
		fcConfig.Timeout = time.Duration(cfg.Workers[fc.TaskType].Timeout) * time.Millisecond
		handler := fc.NewHandler(fcConfig, store, log)
		workers = append(workers, startWorker(zeebeClient, fc.TaskType, cfg.Workers[fc.TaskType], handler, obs, zapLog))
	}

	if cfg.Workers[gr.TaskType].Enabled {
		grConfig := gr.LoadConfig()
		grConfig.Timeout = time.Duration(cfg.Workers[gr.TaskType].Timeout) * time.Millisecond
		handler := gr.NewHandler(grConfig, store, log)
		workers = append(workers, startWorker(zeebeClient, gr.TaskType, cfg.Workers[gr.TaskType], handler, obs, zapLog))
	}

	if cfg.Workers[ar.TaskType].Enabled {
		arConfig := ar.LoadConfig()
		arConfig.Timeout = time.Duration(cfg.Workers[ar.TaskType].Timeout) * time.Millisecond
		if cfg.Guidance.ReportHistorySize > 0 {
			arConfig.HistorySize = cfg.Guidance.ReportHistorySize
		}
		handler := ar.NewHandler(arConfig, pg.DB, log)
		workers = append(workers, startWorker(zeebeClient, ar.TaskType, cfg.Workers[ar.TaskType], handler, obs, zapLog))
	}

	// Safety
	if cfg.Workers[dsc.TaskType].Enabled {
		dscConfig := dsc.LoadConfig()
		dscConfig.Timeout = time.Duration(cfg.Workers[dsc.TaskType].Timeout) * time.Millisecond
		if cfg.Guidance.MaxContentLength > 0 {
			dscConfig.MaxContentLength = cfg.Guidance.MaxContentLength
		}
		if cfg.Database.Elasticsearch.AuditIndex != "" {
			dscConfig.AuditIndex = cfg.Database.Elasticsearch.AuditIndex
		}
		var auditor dsc.AuditIndexer
		if esClient != nil {
			auditor = esClient
		}
		handler := dsc.NewHandler(dscConfig, auditor, log)
		workers = append(workers, startWorker(zeebeClient, dsc.TaskType, cfg.Workers[dsc.TaskType], handler, obs, zapLog))
	}

	// Communication
	if cfg.Workers[sn.TaskType].Enabled {
		snConfig := sn.LoadConfig()
		snConfig.Timeout = time.Duration(cfg.Workers[sn.TaskType].Timeout) * time.Millisecond
		if cfg.Notifications.Email.FromEmail != "" {
			snConfig.FromAddress = cfg.Notifications.Email.FromEmail
		}
		handler := sn.NewHandler(snConfig, emailSender, smsSender, log)
		workers = append(workers, startWorker(zeebeClient, sn.TaskType, cfg.Workers[sn.TaskType], handler, obs, zapLog))
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, w := range workers {
		if w != nil {
			w.Stop(shutdownCtx)
		}
	}

	if err := camClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, observer camunda.JobObserver, log *zap.Logger) *camunda.Worker {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return nil
	}

	return camunda.NewWorker(client, taskType, wcfg.MaxJobsActive, config.GetDuration(wcfg.Timeout), handler, observer, log)
}
