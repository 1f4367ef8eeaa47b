package handlog

import (
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Dialect identifies which of the two log formats a file uses.
type Dialect int

const (
	// DialectLegacy is the plain narrative export, one timestamped line
	// per row of text.
	DialectLegacy Dialect = iota
	// DialectTabular is the CSV export with entry, at and order columns.
	DialectTabular
)

func (d Dialect) String() string {
	if d == DialectTabular {
		return "tabular"
	}
	return "legacy"
}

// DetectDialect inspects the head of a log file. A CSV header row naming the
// entry, at and order columns marks the tabular export; anything else is
// treated as the legacy narrative format.
func DetectDialect(content string) Dialect {
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if line == "" {
			continue
		}
		header := strings.ToLower(strings.ReplaceAll(line, `"`, ""))
		if strings.HasPrefix(header, "entry,at,order") {
			return DialectTabular
		}
		return DialectLegacy
	}
	return DialectLegacy
}

// ExtractLines turns raw file content into chronological lines. Both exports
// are written newest first, so the rows are put back into play order before
// anything downstream sees them.
func ExtractLines(content string, d Dialect) []Line {
	if d == DialectTabular {
		return extractTabular(content)
	}
	return extractLegacy(content)
}

func extractLegacy(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		var at time.Time
		if m := reTimestamp.FindStringSubmatch(text); m != nil {
			if t, err := time.Parse(time.RFC3339, m[1]); err == nil {
				at = t
			}
			text = strings.TrimSpace(text[len(m[0]):])
		}
		lines = append(lines, Line{Text: text, At: at})
	}
	reverseLines(lines)
	return lines
}

func extractTabular(content string) []Line {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\ufeff")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return nil
	}

	entryCol, atCol, orderCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "entry":
			entryCol = i
		case "at":
			atCol = i
		case "order":
			orderCol = i
		}
	}
	if entryCol < 0 {
		return nil
	}

	type row struct {
		line     Line
		order    int64
		hasOrder bool
	}
	var rows []row
	for _, rec := range records[1:] {
		if entryCol >= len(rec) {
			continue
		}
		text := strings.TrimSpace(rec[entryCol])
		if text == "" {
			continue
		}
		rw := row{line: Line{Text: text}}
		if atCol >= 0 && atCol < len(rec) {
			if t, err := time.Parse(time.RFC3339, strings.TrimSpace(rec[atCol])); err == nil {
				rw.line.At = t
			}
		}
		if orderCol >= 0 && orderCol < len(rec) {
			if n, err := strconv.ParseInt(strings.TrimSpace(rec[orderCol]), 10, 64); err == nil {
				rw.order = n
				rw.hasOrder = true
			}
		}
		rows = append(rows, rw)
	}

	// The order column is authoritative when every row carries it;
	// otherwise fall back to reversing the file order.
	allOrdered := len(rows) > 0
	for _, rw := range rows {
		if !rw.hasOrder {
			allOrdered = false
			break
		}
	}
	if allOrdered {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].order < rows[j].order })
	} else {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	lines := make([]Line, len(rows))
	for i, rw := range rows {
		lines[i] = rw.line
	}
	return lines
}

func reverseLines(lines []Line) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}
