package workers

import (
	"context"
	"log/slog"

	"innkeeper/internal/config"
	"innkeeper/internal/database"
	"innkeeper/internal/external"
	"innkeeper/internal/messaging"
	"innkeeper/internal/models"
	"innkeeper/internal/repository"
	"innkeeper/internal/workers/jobs"
)

// WorkerService hosts the event consumers and the periodic jobs
type WorkerService struct {
	db       *database.DB
	nats     *messaging.Client
	repos    *repository.Repositories
	handlers *Handlers
	jobs     []jobs.Job
	cancel   context.CancelFunc
}

func NewWorkerService(cfg *config.Config) (*WorkerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)
	paystackClient := external.NewPaystackClient(cfg.Paystack)
	handlers := NewHandlers(repos, natsClient)

	periodic := []jobs.Job{
		jobs.NewReservationExpiration(repos.Bookings, repos.Rooms, paystackClient, natsClient, cfg.ReservationTTL),
		jobs.NewOverdueTaskEscalation(repos.Tasks, cfg.HousekeepingWindow),
	}

	return &WorkerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
		jobs:     periodic,
	}, nil
}

// Start subscribes the queue consumers and launches the periodic jobs
func (ws *WorkerService) Start() error {
	slog.Info("Starting workers...")

	if _, err := ws.nats.SubscribeQueue(models.EventBookingCheckedOut, "workers", "workers-checkout", ws.handlers.HandleBookingCheckedOut); err != nil {
		return err
	}
	if _, err := ws.nats.SubscribeQueue(models.EventBookingCancelled, "workers", "workers-cancelled", ws.handlers.HandleBookingCancelled); err != nil {
		return err
	}
	if _, err := ws.nats.SubscribeQueue(models.EventPaymentCompleted, "workers", "workers-payment-completed", ws.handlers.HandlePaymentCompleted); err != nil {
		return err
	}
	if _, err := ws.nats.SubscribeQueue(models.EventPaymentFailed, "workers", "workers-payment-failed", ws.handlers.HandlePaymentFailed); err != nil {
		return err
	}
	if _, err := ws.nats.SubscribeQueue(models.EventMaintenanceOpened, "workers", "workers-maintenance", ws.handlers.HandleMaintenanceOpened); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	ws.cancel = cancel
	for _, job := range ws.jobs {
		go job.Run(ctx)
	}

	slog.Info("All workers started successfully")
	return nil
}

func (ws *WorkerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down worker service...")

	if ws.cancel != nil {
		ws.cancel()
	}

	if ws.nats != nil {
		if err := ws.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if ws.db != nil {
		if err := ws.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
