package provision

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/searchprov/internal/domain"
	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
	"github.com/kailas-cloud/searchprov/internal/domain/mode"
)

// Fixed resource names on the search service and in the backing stores.
const (
	CosmosContainer   = "Products"
	CosmosIndexerName = "single-product-indexer"
	BlobContainer     = "productdata"
	BlobIndexerName   = "products-blob-indexer"
)

// Cosmos DB change and deletion tracking columns.
const (
	cosmosHighWaterMarkColumn = "_ts"
	cosmosSoftDeleteColumn    = "isDeleted"
	cosmosSoftDeleteMarker    = "true"
)

// Settings carries the connection values the data sources are built from.
type Settings struct {
	CosmosConnectionString string
	CosmosDatabase         string
	BlobAccountName        string
	BlobConnectionString   string
}

// Source pairs a data source with the indexer that feeds it into the target index.
type Source struct {
	Kind       mode.Source
	Label      string
	DataSource datasource.DataSource
	Indexer    domixr.Indexer
}

// CosmosSource builds the document-database source. The data source is named
// after the database and tracks changes through the _ts high water mark.
func CosmosSource(s Settings, indexName string) (Source, error) {
	conn := strings.TrimRight(s.CosmosConnectionString, ";") + ";Database=" + s.CosmosDatabase
	ds, err := datasource.New(s.CosmosDatabase, datasource.CosmosDB, conn, CosmosContainer,
		datasource.WithHighWaterMark(cosmosHighWaterMarkColumn),
		datasource.WithSoftDelete(cosmosSoftDeleteColumn, cosmosSoftDeleteMarker),
	)
	if err != nil {
		return Source{}, fmt.Errorf("cosmos data source: %w: %w", domain.ErrInvalidConfig, err)
	}

	ix, err := domixr.New(CosmosIndexerName, ds.Name(), indexName,
		domixr.WithSchedule(domixr.Daily),
	)
	if err != nil {
		return Source{}, fmt.Errorf("cosmos indexer: %w: %w", domain.ErrInvalidConfig, err)
	}

	return Source{Kind: mode.SourceCosmos, Label: "Cosmos DB", DataSource: ds, Indexer: ix}, nil
}

// BlobSource builds the blob-container source. Each blob holds one JSON document.
func BlobSource(s Settings, indexName string) (Source, error) {
	ds, err := datasource.New(s.BlobAccountName, datasource.AzureBlob, s.BlobConnectionString, BlobContainer)
	if err != nil {
		return Source{}, fmt.Errorf("blob data source: %w: %w", domain.ErrInvalidConfig, err)
	}

	ix, err := domixr.New(BlobIndexerName, ds.Name(), indexName,
		domixr.WithSchedule(domixr.Daily),
		domixr.WithParsingMode(domixr.ParsingJSON),
	)
	if err != nil {
		return Source{}, fmt.Errorf("blob indexer: %w: %w", domain.ErrInvalidConfig, err)
	}

	return Source{Kind: mode.SourceBlob, Label: "Blob Storage", DataSource: ds, Indexer: ix}, nil
}

// SourceFor dispatches to the builder for kind.
func SourceFor(kind mode.Source, s Settings, indexName string) (Source, error) {
	switch kind {
	case mode.SourceCosmos:
		return CosmosSource(s, indexName)
	case mode.SourceBlob:
		return BlobSource(s, indexName)
	default:
		return Source{}, fmt.Errorf("unknown source %q", kind)
	}
}
