package handlog

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Parser reconstructs hands from a raw log export. It picks the dialect per
// file, restores chronological order, and never aborts on bad input.
type Parser struct {
	logger *log.Logger
}

// NewParser returns a Parser reporting through the given logger.
func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// ParseFile reads and parses one log file.
func (p *Parser) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	res := p.Parse(string(data))
	p.logger.Info("parsed log",
		"file", path,
		"dialect", res.Dialect.String(),
		"hands", len(res.Hands),
		"anomalies", len(res.Anomalies),
		"unrecognized", res.Unrecognized)
	return res, nil
}

// Parse reconstructs every hand found in the given log content.
func (p *Parser) Parse(content string) *Result {
	dialect := DetectDialect(content)
	lines := ExtractLines(content, dialect)
	classifier := NewLineClassifier(dialect)

	seg := newSegmenter()
	for _, line := range lines {
		seg.feed(classifier.Classify(line))
	}
	seg.finish()

	ResolveHero(seg.hands)

	for _, a := range seg.anomalies {
		p.logger.Debug("parse anomaly", "hand", a.HandID, "code", a.Code, "detail", a.Detail)
	}

	return &Result{
		Dialect:      dialect,
		Hands:        seg.hands,
		Anomalies:    seg.anomalies,
		Lines:        len(lines),
		Unrecognized: seg.unrecognized,
	}
}
