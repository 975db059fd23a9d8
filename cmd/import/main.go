package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"
)

const insertPlayerSQL = `
	INSERT INTO players2025 (
		name, nationality, position, team, age,
		matches_played, starts, minutes, goals,
		assists, pk_made, xg, xag
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// requiredColumns are the season-stats export headers this importer
// understands.
var requiredColumns = []string{
	"player", "nationality", "position", "team", "age",
	"games", "games_starts", "minutes", "goals",
	"assists", "pens_made", "xg", "xg_assist",
}

type playerRow struct {
	line   int
	values []any
}

func main() {
	csvPath := flag.String("csv", "ucl_player_stats_2024.csv", "path to the season stats CSV export")
	workers := flag.Int("workers", 4, "number of concurrent insert workers")
	flag.Parse()

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}
	if *workers < 1 {
		log.Fatal("workers must be >= 1")
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	imported, skipped, err := importCSV(context.Background(), db, *csvPath, *workers)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("imported %d rows, skipped %d", imported, skipped)
	if skipped > 0 {
		os.Exit(1)
	}
}

func importCSV(ctx context.Context, db *sqlx.DB, path string, workers int) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, crerr.Wrap(err, "open csv")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, crerr.Wrap(err, "read csv header")
	}
	columnIndex, err := mapHeader(header)
	if err != nil {
		return 0, 0, err
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, 0, crerr.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	report := bytebufferpool.Get()
	defer bytebufferpool.Put(report)

	var (
		imported atomic.Int32
		skipped  atomic.Int32
		reportMu sync.Mutex
		workersW sync.WaitGroup
	)

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped.Add(1)
			appendReport(report, &reportMu, line, err)
			continue
		}

		row, err := buildRow(record, columnIndex, line)
		if err != nil {
			skipped.Add(1)
			appendReport(report, &reportMu, line, err)
			continue
		}

		workersW.Add(1)
		if err := pool.Submit(func() {
			defer workersW.Done()

			insertCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if _, err := db.ExecContext(insertCtx, insertPlayerSQL, row.values...); err != nil {
				skipped.Add(1)
				appendReport(report, &reportMu, row.line, err)
				return
			}
			imported.Add(1)
		}); err != nil {
			workersW.Done()
			return int(imported.Load()), int(skipped.Load()), crerr.Wrap(err, "submit row to worker pool")
		}
	}

	workersW.Wait()

	if report.Len() > 0 {
		fmt.Fprint(os.Stderr, report.String())
	}

	return int(imported.Load()), int(skipped.Load()), nil
}

func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, crerr.Newf("csv is missing column %q", column)
		}
	}
	return index, nil
}

func buildRow(record []string, columnIndex map[string]int, line int) (playerRow, error) {
	field := func(name string) string {
		i := columnIndex[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("player")
	if name == "" {
		return playerRow{}, crerr.Newf("row %d has no player name", line)
	}

	return playerRow{
		line: line,
		values: []any{
			name,
			field("nationality"),
			field("position"),
			field("team"),
			parseInt(field("age")),
			parseInt(field("games")),
			parseInt(field("games_starts")),
			parseInt(field("minutes")),
			parseInt(field("goals")),
			parseInt(field("assists")),
			parseInt(field("pens_made")),
			parseFloat(field("xg")),
			parseFloat(field("xg_assist")),
		},
	}, nil
}

// parseInt tolerates thousands separators in the minutes column and
// maps empty or malformed values to NULL.
func parseInt(raw string) any {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return nil
	}
	return value
}

func parseFloat(raw string) any {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return value
}

func appendReport(report *bytebufferpool.ByteBuffer, mu *sync.Mutex, line int, err error) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(report, "row %d skipped: %v\n", line, err)
}
