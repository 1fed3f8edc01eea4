// Carga NDJSON de recetas y ratings en Mongo (datos de prueba/bootstrap).
//
//	go run ./cmd/seed --recipes data/recipes.ndjson --ratings data/ratings.ndjson
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"saborml/internal/config"
	"saborml/internal/db"
	"saborml/internal/models"
)

func main() {
	recipesPath := flag.String("recipes", "", "NDJSON de recetas (uno por línea)")
	ratingsPath := flag.String("ratings", "", "NDJSON de ratings (uno por línea)")
	flag.Parse()

	if *recipesPath == "" && *ratingsPath == "" {
		log.Fatal("nada que cargar: pasá --recipes y/o --ratings")
	}

	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *recipesPath != "" {
		n, err := loadNDJSON(ctx, *recipesPath, "recipes", func() any { return &models.RecipeDoc{} })
		if err != nil {
			log.Fatalf("[seed] error cargando recetas: %v", err)
		}
		log.Printf("[seed] %d recetas cargadas", n)
	}

	if *ratingsPath != "" {
		n, err := loadNDJSON(ctx, *ratingsPath, "ratings", func() any { return &models.RatingDoc{} })
		if err != nil {
			log.Fatalf("[seed] error cargando ratings: %v", err)
		}
		log.Printf("[seed] %d ratings cargados", n)
	}
}

// loadNDJSON decodifica un documento por línea y los inserta en lotes.
func loadNDJSON(ctx context.Context, path, collection string, newDoc func() any) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	col := db.DB().Collection(collection)

	const batchSize = 500
	var batch []any
	total := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		doc := newDoc()
		if err := json.Unmarshal(line, doc); err != nil {
			log.Printf("[seed] línea inválida, se saltea: %v", err)
			continue
		}
		batch = append(batch, doc)

		if len(batch) >= batchSize {
			if _, err := col.InsertMany(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return total, err
	}

	if len(batch) > 0 {
		if _, err := col.InsertMany(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}
