package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_WhereOrderLimit(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players2025").
		Where(Eq("team", "eng Arsenal"), Like("position", "%DF%")).
		OrderBy("id").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id, name FROM players2025 WHERE team = $1 AND position LIKE $2 ORDER BY id LIMIT 5"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"eng Arsenal", "%DF%"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestSelect_DistinctNotNull(t *testing.T) {
	query, args, err := Select("team").
		Distinct().
		From("players2025").
		Where(NotNull("team")).
		OrderBy("team ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT DISTINCT team FROM players2025 WHERE team IS NOT NULL ORDER BY team ASC"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestSelect_RequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("players2025").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsert_WithReturningSuffix(t *testing.T) {
	query, args, err := InsertInto("players2025").
		Columns("name", "team").
		Values("Bukayo Saka", "eng Arsenal").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO players2025 (name, team) VALUES ($1, $2) RETURNING id"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"Bukayo Saka", "eng Arsenal"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsert_ColumnValueMismatch(t *testing.T) {
	if _, _, err := InsertInto("players2025").Columns("name", "team").Values("only-one").ToSQL(); err == nil {
		t.Fatalf("expected error for value count mismatch")
	}
}

func TestUpdate_SetsAndWhere(t *testing.T) {
	query, args, err := Update("players2025").
		Set("name", "Saka").
		Set("goals", 7).
		Where(Eq("id", int64(12))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE players2025 SET name = $1, goals = $2 WHERE id = $3"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"Saka", 7, int64(12)}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestDelete_RequiresWhere(t *testing.T) {
	query, args, err := DeleteFrom("players2025").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM players2025 WHERE id = $1" {
		t.Fatalf("query mismatch: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(3)}) {
		t.Fatalf("args mismatch: %v", args)
	}

	if _, _, err := DeleteFrom("players2025").ToSQL(); err == nil {
		t.Fatalf("expected unbounded delete to be rejected")
	}
}
