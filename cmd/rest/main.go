package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatlog-be/internal/bootstrap"
	"chatlog-be/internal/config"
	"chatlog-be/internal/server"
	"chatlog-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Observability)
	defer shutdownTracer(context.Background())

	// 3. Infrastructure
	infra, err := bootstrap.NewInfrastructure(cfg)
	if err != nil {
		log.Panicf("Unable to initialize infrastructure: %v", err)
	}
	defer infra.Close()

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, infra)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}
	infra.StartSessionJanitor(ctx)

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
