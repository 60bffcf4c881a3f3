package indexer

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// dataSourceToDefinition converts a domain DataSource to its wire definition.
func dataSourceToDefinition(ds datasource.DataSource) (*searchapi.DataSourceDefinition, error) {
	var dsType string
	switch ds.Type() {
	case datasource.CosmosDB:
		dsType = searchapi.DataSourceCosmosDB
	case datasource.AzureBlob:
		dsType = searchapi.DataSourceAzureBlob
	default:
		return nil, fmt.Errorf("unknown data source type: %s", ds.Type())
	}

	b := searchapi.NewDataSource(ds.Name(), dsType, ds.ConnectionString(), ds.Container())
	if hwm := ds.ChangeDetection(); hwm != nil {
		b.HighWaterMark(hwm.Column)
	}
	if sd := ds.Deletion(); sd != nil {
		b.SoftDelete(sd.Column, sd.MarkerValue)
	}
	return b.Build()
}

// indexerToDefinition converts a domain Indexer to its wire definition.
func indexerToDefinition(ix domixr.Indexer) (*searchapi.IndexerDefinition, error) {
	b := searchapi.NewIndexer(ix.Name(), ix.DataSource(), ix.TargetIndex())
	if ix.Interval() > 0 {
		b.Every(ix.Interval())
	}
	for k, v := range ix.Configuration() {
		b.Configure(k, v)
	}
	return b.Build()
}

// indexerFromDefinition hydrates a domain Indexer from a GET response.
// Non-string configuration values are formatted with %v.
func indexerFromDefinition(def *searchapi.IndexerDefinition) domixr.Indexer {
	var interval time.Duration
	if def.Schedule != nil {
		interval = time.Duration(def.Schedule.Interval)
	}
	var cfg map[string]string
	if def.Parameters != nil && len(def.Parameters.Configuration) > 0 {
		cfg = make(map[string]string, len(def.Parameters.Configuration))
		for k, v := range def.Parameters.Configuration {
			cfg[k] = fmt.Sprintf("%v", v)
		}
	}
	return domixr.Reconstruct(def.Name, def.DataSourceName, def.TargetIndexName, interval, cfg)
}
