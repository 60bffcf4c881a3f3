package searchapi

import (
	"errors"
	"time"
)

// Schedule is the recurring run interval of an indexer.
type Schedule struct {
	Interval  Duration   `json:"interval"`
	StartTime *time.Time `json:"startTime,omitempty"`
}

// IndexingParameters carries connector specific settings such as parsingMode.
type IndexingParameters struct {
	BatchSize     *int           `json:"batchSize,omitempty"`
	Configuration map[string]any `json:"configuration,omitempty"`
}

// IndexerDefinition is the body of PUT /indexers/{name} and the GET response.
type IndexerDefinition struct {
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	DataSourceName  string              `json:"dataSourceName"`
	TargetIndexName string              `json:"targetIndexName"`
	Schedule        *Schedule           `json:"schedule,omitempty"`
	Parameters      *IndexingParameters `json:"parameters,omitempty"`
	Disabled        *bool               `json:"disabled,omitempty"`
	ETag            string              `json:"@odata.etag,omitempty"`
}

// Validate checks that the indexer definition is well-formed.
func (ix *IndexerDefinition) Validate() error {
	if ix.Name == "" {
		return errors.New("indexer name is required")
	}
	if ix.DataSourceName == "" {
		return errors.New("data source name is required")
	}
	if ix.TargetIndexName == "" {
		return errors.New("target index name is required")
	}
	if ix.Schedule != nil && time.Duration(ix.Schedule.Interval) <= 0 {
		return errors.New("schedule interval must be positive")
	}
	return nil
}
