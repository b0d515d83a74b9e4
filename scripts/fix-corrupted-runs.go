package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// checkRun reports why a stored run cannot be served, or "" when it is intact
func checkRun(ctx context.Context, client *redis.Client, key string) (string, *collection.Run) {
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Sprintf("unreadable: %v", err), nil
	}

	var run collection.Run
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return "corrupted JSON", nil
	}

	fields, err := client.HGetAll(ctx, key+":tokens").Result()
	if err != nil {
		return fmt.Sprintf("unreadable tokens: %v", err), &run
	}
	if len(fields) != run.Tokens {
		return fmt.Sprintf("has %d of %d tokens", len(fields), run.Tokens), &run
	}

	ids := make([]int, 0, len(fields))
	for field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Sprintf("bad token field %q", field), &run
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([][]traits.Attribute, 0, len(ids))
	for _, id := range ids {
		var tok collection.Token
		if err := json.Unmarshal([]byte(fields[strconv.Itoa(id)]), &tok); err != nil {
			return fmt.Sprintf("corrupted token %d", id), &run
		}
		all = append(all, tok.Record.Attributes)
	}

	digest, err := collection.Digest(all)
	if err != nil {
		return fmt.Sprintf("digest failed: %v", err), &run
	}
	if digest != run.Digest {
		return fmt.Sprintf("digest %s does not match stored %s", digest, run.Digest), &run
	}

	return "", &run
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted collection runs...")

	iter := client.Scan(ctx, 0, "collection_run:*", 0).Iterator()

	// run key -> seed index key, empty when the run could not be parsed
	corrupted := make(map[string]string)
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, ":tokens") || strings.HasPrefix(key, "collection_run:seed:") {
			continue
		}
		checkedCount++

		reason, run := checkRun(ctx, client, key)
		if reason == "" {
			continue
		}

		fmt.Printf("✗ %s %s\n", key, reason)
		corrupted[key] = ""
		if run != nil && run.Seed != "" {
			corrupted[key] = "collection_run:seed:" + run.Seed
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d runs, found %d corrupted\n", checkedCount, len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted runs found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these runs and their tokens? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for key, seedKey := range corrupted {
		runID := strings.Trim(strings.TrimPrefix(key, "collection_run:"), "{}")
		pipe := client.TxPipeline()
		pipe.Del(ctx, key, key+":tokens")
		if seedKey != "" {
			pipe.SRem(ctx, seedKey, runID)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
