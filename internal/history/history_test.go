package history

import (
	"testing"
	"time"
)

const sampleLog = `aaa111|Alice|alice@example.com|1700000200|add parser
10	2	parser.go
3	0	parser_test.go

bbb222|Bob|bob@example.com|1700000100|initial commit
5	0	main.go
-	-	logo.png

ccc333|Alice|alice@example.com|1700000300|remove dead code
0	7	legacy.go`

func TestParseLogCountsAndMetadata(t *testing.T) {
	records, err := ParseLog(sampleLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Hash != "aaa111" {
		t.Errorf("expected hash aaa111, got %q", first.Hash)
	}
	if first.Author != "Alice" || first.Email != "alice@example.com" {
		t.Errorf("unexpected author %q <%s>", first.Author, first.Email)
	}
	if first.Subject != "add parser" {
		t.Errorf("unexpected subject %q", first.Subject)
	}
	if first.Additions != 13 || first.Deletions != 2 {
		t.Errorf("expected +13/-2, got +%d/-%d", first.Additions, first.Deletions)
	}
	if !first.Timestamp.Equal(time.Unix(1700000200, 0).UTC()) {
		t.Errorf("unexpected timestamp %v", first.Timestamp)
	}
}

func TestParseLogSkipsBinaryStats(t *testing.T) {
	records, err := ParseLog(sampleLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// logo.png is binary ("-" numstat) and must not count toward Bob's totals.
	if records[1].Additions != 5 || records[1].Deletions != 0 {
		t.Errorf("expected +5/-0, got +%d/-%d", records[1].Additions, records[1].Deletions)
	}
}

func TestParseLogBadTimestamp(t *testing.T) {
	_, err := ParseLog("zzz|A|a@x|notanumber|subject")
	if err == nil {
		t.Fatal("expected error for bad timestamp")
	}
}

func TestParseLogEmpty(t *testing.T) {
	records, err := ParseLog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestSortByTimestamp(t *testing.T) {
	records, err := ParseLog(sampleLog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	SortByTimestamp(records)

	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.Before(records[i-1].Timestamp) {
			t.Fatalf("records not sorted at %d", i)
		}
	}
	if records[0].Hash != "bbb222" {
		t.Errorf("expected oldest commit first, got %q", records[0].Hash)
	}
}

func TestSortByTimestampStable(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()
	records := []CommitRecord{
		{Hash: "one", Timestamp: ts},
		{Hash: "two", Timestamp: ts},
		{Hash: "three", Timestamp: ts},
	}
	SortByTimestamp(records)
	if records[0].Hash != "one" || records[1].Hash != "two" || records[2].Hash != "three" {
		t.Errorf("equal-timestamp records were reordered: %v", records)
	}
}

func TestContributors(t *testing.T) {
	records, _ := ParseLog(sampleLog)
	counts := Contributors(records)
	if len(counts) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(counts))
	}
	if counts["alice@example.com"] != 2 {
		t.Errorf("expected 2 commits for alice, got %d", counts["alice@example.com"])
	}
	if counts["bob@example.com"] != 1 {
		t.Errorf("expected 1 commit for bob, got %d", counts["bob@example.com"])
	}
}
