// bale-verdict evaluates a fact set against a rule pack and prints the
// verdict with its full derivation trace. With --db, the verdict is
// also appended to a SQLite audit log.
//
// Usage:
//
//	bale-verdict --facts facts.json [--pack pack.yaml] [--goal name] [--db audit.db]
//
// The facts file is a flat JSON object of scalar assertions, typically
// the boolean extraction produced by the debate pipeline's clerk stage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/logic"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/rulepack"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store/sqlite"
)

func main() {
	var (
		packPath  = flag.String("pack", "", "Rule pack YAML (default: built-in force majeure pack)")
		factsPath = flag.String("facts", "", "Fact JSON file (required)")
		goal      = flag.String("goal", "", "Goal fact to prove (default: the pack's goal)")
		dbPath    = flag.String("db", "", "SQLite audit database (optional)")
		maxDepth  = flag.Int("max-depth", 64, "Maximum proof depth, 0 for unbounded")
	)
	flag.Parse()

	if *factsPath == "" {
		log.Fatal("--facts required")
	}

	ctx := context.Background()

	pack, err := loadPack(*packPath)
	if err != nil {
		log.Fatal(err)
	}

	facts, err := loadFacts(*factsPath)
	if err != nil {
		log.Fatal(err)
	}

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open audit db: %v", err)
		}
	}

	adj, err := bale.New(bale.Options{Pack: pack, Store: st, MaxDepth: *maxDepth})
	if err != nil {
		log.Fatal(err)
	}
	defer adj.Close()

	v, err := adj.Adjudicate(ctx, facts, *goal)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- DERIVATION TRACE ---")
	for _, line := range v.Trace {
		fmt.Println(line)
	}
	fmt.Println()

	if v.Proved {
		fmt.Printf("VERDICT %s: %s = %s\n", v.ID, v.Goal, v.Value)
	} else {
		fmt.Printf("VERDICT %s: %s UNPROVED\n", v.ID, v.Goal)
	}
}

// loadPack loads a YAML pack, or the built-in force majeure pack when
// no path is given.
func loadPack(path string) (rulepack.Pack, error) {
	if path == "" {
		return rulepack.ForceMajeure(), nil
	}
	pack, err := rulepack.LoadPack(path)
	if err != nil {
		return rulepack.Pack{}, fmt.Errorf("load pack: %w", err)
	}
	return pack, nil
}

// loadFacts reads a clerk fact file.
func loadFacts(path string) (map[string]logic.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read facts: %w", err)
	}
	facts, err := rulepack.FactsFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse facts: %w", err)
	}
	return facts, nil
}
