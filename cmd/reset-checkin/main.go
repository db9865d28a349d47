package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"example.com/checkin-reset/internal/config"
	"example.com/checkin-reset/internal/database"
	"example.com/checkin-reset/internal/queue"
	"example.com/checkin-reset/internal/reset"
	"example.com/checkin-reset/internal/store"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "env file holding DATABASE_API and DATABASE_AUTH_KEY")
	flag.Parse()

	os.Exit(run(context.Background(), *envFile, os.Stdout))
}

func run(ctx context.Context, envFile string, out io.Writer) int {
	cfg, err := config.Load(envFile)
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			fmt.Fprintf(out, "Error: DATABASE_API or DATABASE_AUTH_KEY not found in %s\n", envFile)
		} else {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		return 1
	}

	client, err := database.NewClient(cfg.DatabaseAPI, cfg.DatabaseAuthKey)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	var opts []reset.Option
	if cfg.MySQLDSN != "" {
		st, err := store.NewGormStore(cfg.MySQLDSN)
		if err != nil {
			fmt.Fprintf(out, "Error: failed to open reset journal: %v\n", err)
			return 1
		}
		defer st.Close()
		log.Println("using MySQL reset journal")
		opts = append(opts, reset.WithJournal(st))
	}
	if cfg.RabbitMQURL != "" {
		pub, err := queue.NewRabbitPublisher(cfg.RabbitMQURL, queue.DefaultQueue)
		if err != nil {
			fmt.Fprintf(out, "Error: failed to connect to rabbitmq: %v\n", err)
			return 1
		}
		defer pub.Close()
		log.Printf("publishing reset summaries to %s", queue.DefaultQueue)
		opts = append(opts, reset.WithPublisher(pub))
	}

	runner, err := reset.NewRunner(client, out, opts...)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	log.Printf("reset run %s", runner.RunID())
	runner.Run(ctx)
	return 0
}
