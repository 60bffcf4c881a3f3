package indexer

import (
	"fmt"
	"time"
)

// Schedule interval bounds accepted by the search service.
const (
	MinInterval = 5 * time.Minute
	MaxInterval = 24 * time.Hour

	// Daily is the interval used for every indexer provisioned here.
	Daily = 24 * time.Hour
)

// ParsingMode controls how blob content is split into documents.
type ParsingMode string

// Parsing modes.
const (
	ParsingDefault   ParsingMode = "default"
	ParsingJSON      ParsingMode = "json"
	ParsingJSONArray ParsingMode = "jsonArray"
	ParsingJSONLines ParsingMode = "jsonLines"
)

// IsValid checks if the parsing mode is supported.
func (p ParsingMode) IsValid() bool {
	switch p {
	case ParsingDefault, ParsingJSON, ParsingJSONArray, ParsingJSONLines:
		return true
	}
	return false
}

// Indexer pulls documents from a data source into a target index on a schedule.
type Indexer struct {
	name          string
	dataSource    string
	targetIndex   string
	interval      time.Duration
	configuration map[string]string
}

// Option configures optional indexer settings.
type Option func(*Indexer)

// WithSchedule runs the indexer every interval.
func WithSchedule(interval time.Duration) Option {
	return func(i *Indexer) { i.interval = interval }
}

// WithParsingMode sets the "parsingMode" configuration parameter.
func WithParsingMode(mode ParsingMode) Option {
	return WithConfiguration("parsingMode", string(mode))
}

// WithConfiguration sets a raw configuration parameter.
func WithConfiguration(key, value string) Option {
	return func(i *Indexer) {
		if i.configuration == nil {
			i.configuration = make(map[string]string)
		}
		i.configuration[key] = value
	}
}

// New validates and creates an Indexer.
func New(name, dataSource, targetIndex string, opts ...Option) (Indexer, error) {
	if name == "" {
		return Indexer{}, fmt.Errorf("indexer name is required")
	}
	if dataSource == "" {
		return Indexer{}, fmt.Errorf("data source name is required for indexer %q", name)
	}
	if targetIndex == "" {
		return Indexer{}, fmt.Errorf("target index is required for indexer %q", name)
	}

	i := Indexer{name: name, dataSource: dataSource, targetIndex: targetIndex}
	for _, o := range opts {
		o(&i)
	}
	if i.interval != 0 && (i.interval < MinInterval || i.interval > MaxInterval) {
		return Indexer{}, fmt.Errorf("schedule interval %s out of range [%s, %s]", i.interval, MinInterval, MaxInterval)
	}
	if pm, ok := i.configuration["parsingMode"]; ok && !ParsingMode(pm).IsValid() {
		return Indexer{}, fmt.Errorf("invalid parsing mode %q", pm)
	}
	return i, nil
}

// Name returns the indexer name.
func (i Indexer) Name() string { return i.name }

// DataSource returns the bound data source name.
func (i Indexer) DataSource() string { return i.dataSource }

// TargetIndex returns the target index name.
func (i Indexer) TargetIndex() string { return i.targetIndex }

// Interval returns the schedule interval, zero when unscheduled.
func (i Indexer) Interval() time.Duration { return i.interval }

// Configuration returns a copy of the configuration parameters.
func (i Indexer) Configuration() map[string]string {
	if len(i.configuration) == 0 {
		return nil
	}
	out := make(map[string]string, len(i.configuration))
	for k, v := range i.configuration {
		out[k] = v
	}
	return out
}

// Reconstruct creates an Indexer without validation (remote hydration).
func Reconstruct(name, dataSource, targetIndex string, interval time.Duration, configuration map[string]string) Indexer {
	return Indexer{
		name:          name,
		dataSource:    dataSource,
		targetIndex:   targetIndex,
		interval:      interval,
		configuration: configuration,
	}
}
