package jobs

import (
	"Backend-Tutoria-001/src/database"
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server next to the HTTP process. Called only
// when Redis is configured; returns immediately otherwise.
func StartWorker() {
	if database.RedisURI == "" {
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBroadcastDeliver, HandleBroadcastDeliverTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
