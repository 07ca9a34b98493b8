// verify_schema checks that a license ledger file carries the expected
// tables, columns and indexes. Useful after migrating an old ledger by hand.
//
// Usage:
//   go run scripts/verify_schema.go [path]
//
// Without an argument the path comes from LICENSE_DB_PATH.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"strategy-worker/pkg/config"
)

func main() {
	dbPath := ""
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("load config error: %v", err)
		}
		dbPath = cfg.LicenseDBPath
	}
	fmt.Printf("Verifying license ledger at: %s\n", dbPath)

	if _, err := os.Stat(dbPath); err != nil {
		log.Fatalf("Ledger not readable: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	ok := true

	fmt.Println("\n1. Verifying licenses table...")
	if exists(db, "table", "licenses") {
		fmt.Println("✓ licenses table exists")
	} else {
		fmt.Println("❌ licenses table MISSING")
		ok = false
	}

	fmt.Println("\n2. Verifying note column...")
	if columnExists(db, "licenses", "note") {
		fmt.Println("✓ note column exists")
	} else {
		fmt.Println("❌ note column MISSING (ledger predates the note migration)")
		ok = false
	}

	fmt.Println("\n3. Verifying machine index...")
	if exists(db, "index", "idx_licenses_machine") {
		fmt.Println("✓ idx_licenses_machine exists")
	} else {
		fmt.Println("❌ idx_licenses_machine MISSING")
		ok = false
	}

	if !ok {
		fmt.Println("\nRun the license server once to apply migrations.")
		os.Exit(1)
	}
	fmt.Println("\nLedger schema looks good.")
}

func exists(db *sql.DB, kind, name string) bool {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type=? AND name=?", kind, name)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()
	return rows.Next()
}

func columnExists(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if name == column {
			return true
		}
	}
	return false
}
