package datasource

import "fmt"

// Type is the connector kind of a data source.
type Type string

// Supported data source types.
const (
	CosmosDB  Type = "cosmosdb"
	AzureBlob Type = "azureblob"
)

// IsValid checks if the data source type is supported.
func (t Type) IsValid() bool {
	return t == CosmosDB || t == AzureBlob
}

// HighWaterMark tracks changes by a monotonically increasing column.
type HighWaterMark struct {
	Column string
}

// SoftDelete treats rows whose Column equals MarkerValue as deleted.
type SoftDelete struct {
	Column      string
	MarkerValue string
}

// DataSource is a named, typed connection an indexer reads from (immutable value object).
type DataSource struct {
	name             string
	sourceType       Type
	connectionString string
	container        string
	changeDetection  *HighWaterMark
	deletion         *SoftDelete
}

// Option configures optional policies.
type Option func(*DataSource)

// WithHighWaterMark enables incremental change detection on column.
func WithHighWaterMark(column string) Option {
	return func(d *DataSource) { d.changeDetection = &HighWaterMark{Column: column} }
}

// WithSoftDelete enables soft-delete detection.
func WithSoftDelete(column, marker string) Option {
	return func(d *DataSource) { d.deletion = &SoftDelete{Column: column, MarkerValue: marker} }
}

// New validates and creates a DataSource.
func New(name string, t Type, connectionString, container string, opts ...Option) (DataSource, error) {
	if name == "" {
		return DataSource{}, fmt.Errorf("data source name is required")
	}
	if len(name) > 128 {
		return DataSource{}, fmt.Errorf("data source name too long (max 128)")
	}
	if !t.IsValid() {
		return DataSource{}, fmt.Errorf("invalid data source type %q", t)
	}
	if connectionString == "" {
		return DataSource{}, fmt.Errorf("connection string is required for data source %q", name)
	}
	if container == "" {
		return DataSource{}, fmt.Errorf("container is required for data source %q", name)
	}

	d := DataSource{
		name:             name,
		sourceType:       t,
		connectionString: connectionString,
		container:        container,
	}
	for _, o := range opts {
		o(&d)
	}
	if d.changeDetection != nil && d.changeDetection.Column == "" {
		return DataSource{}, fmt.Errorf("high water mark column is required")
	}
	if d.deletion != nil && (d.deletion.Column == "" || d.deletion.MarkerValue == "") {
		return DataSource{}, fmt.Errorf("soft delete column and marker value are required")
	}
	return d, nil
}

// Name returns the data source name.
func (d DataSource) Name() string { return d.name }

// Type returns the connector kind.
func (d DataSource) Type() Type { return d.sourceType }

// ConnectionString returns the connection string.
func (d DataSource) ConnectionString() string { return d.connectionString }

// Container returns the container (collection or blob container) name.
func (d DataSource) Container() string { return d.container }

// ChangeDetection returns the change detection policy or nil.
func (d DataSource) ChangeDetection() *HighWaterMark { return d.changeDetection }

// Deletion returns the deletion detection policy or nil.
func (d DataSource) Deletion() *SoftDelete { return d.deletion }
