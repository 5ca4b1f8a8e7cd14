// Command lead-score-audit scores every stored lead with the rule-based
// scorer and prints a score distribution plus the weakest leads. It is
// read-only; nothing is written back.
package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/repository"
	"leaddesk_backend/internal/leads/scoring"
	"leaddesk_backend/platform/config"
	"leaddesk_backend/platform/db"
	"leaddesk_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	batchSize      = 200
	scoreWorkers   = 8
	lowestReported = 10
)

type scoredLead struct {
	lead  repository.Lead
	score int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting lead score audit")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	repo := repository.New(pool)
	scorer := scoring.Default()

	var all []repository.Lead
	for offset := 0; ; offset += batchSize {
		batch, err := repo.List(ctx, batchSize, offset)
		if err != nil {
			log.Error("failed to list leads", "error", err)
			panic("failed to list leads: " + err.Error())
		}
		all = append(all, batch...)
		if len(batch) < batchSize {
			break
		}
	}
	if len(all) == 0 {
		log.Info("no leads to audit")
		return
	}

	scored := make([]scoredLead, len(all))
	var mu sync.Mutex
	buckets := make(map[int]int)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, lead := range all {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			score := scorer.Score(domain.Record{
				Name:    &lead.Name,
				Email:   &lead.Email,
				Company: &lead.Company,
				Status:  domain.ParseStatus(lead.Status),
			})
			scored[i] = scoredLead{lead: lead, score: score}

			mu.Lock()
			buckets[score/10*10]++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("scoring failed", "error", err)
		panic("scoring failed: " + err.Error())
	}

	printDistribution(buckets, len(all))
	printLowest(scored)

	log.Info("lead score audit completed", "leads", len(all))
}

func printDistribution(buckets map[int]int, total int) {
	fmt.Printf("score distribution (%d leads)\n", total)
	for bucket := 0; bucket <= 100; bucket += 10 {
		count := buckets[bucket]
		if count == 0 {
			continue
		}
		fmt.Printf("  %3d-%3d  %5d  %5.1f%%\n", bucket, bucket+9, count, float64(count)*100/float64(total))
	}
}

func printLowest(scored []scoredLead) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score < scored[j].score
		}
		return scored[i].lead.Email < scored[j].lead.Email
	})

	n := lowestReported
	if len(scored) < n {
		n = len(scored)
	}

	fmt.Printf("lowest scoring leads (bottom %d)\n", n)
	for _, s := range scored[:n] {
		fmt.Printf("  %3d  %s  %s  %s\n", s.score, s.lead.ID, s.lead.Email, s.lead.Status)
	}
}
