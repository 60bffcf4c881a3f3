package searchapi

import (
	"strings"
	"time"
)

// IndexBuilder is a fluent builder for index definitions.
type IndexBuilder struct {
	def IndexDefinition
}

// NewIndex starts building an index definition.
func NewIndex(name string) *IndexBuilder {
	return &IndexBuilder{def: IndexDefinition{Name: name}}
}

// Key adds a retrievable Edm.String key field.
func (b *IndexBuilder) Key(name string, filterable bool) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, FieldDefinition{
		Name:        name,
		Type:        EdmString,
		Key:         true,
		Filterable:  filterable,
		Retrievable: true,
	})
	return b
}

// Simple adds a retrievable, non-searchable field.
func (b *IndexBuilder) Simple(name, edmType string, filterable bool) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, FieldDefinition{
		Name:        name,
		Type:        edmType,
		Filterable:  filterable,
		Retrievable: true,
	})
	return b
}

// Build validates and returns the index definition.
func (b *IndexBuilder) Build() (*IndexDefinition, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return &b.def, nil
}

// String returns a compact debug representation of the schema.
func (idx *IndexDefinition) String() string {
	parts := []string{"INDEX", idx.Name, "FIELDS"}
	for i := range idx.Fields {
		f := &idx.Fields[i]
		p := f.Name + ":" + strings.TrimPrefix(f.Type, "Edm.")
		if f.Key {
			p += ",key"
		}
		if f.Filterable {
			p += ",filterable"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// DataSourceBuilder is a fluent builder for data source definitions.
type DataSourceBuilder struct {
	def DataSourceDefinition
}

// NewDataSource starts building a data source definition.
func NewDataSource(name, dsType, connectionString, container string) *DataSourceBuilder {
	return &DataSourceBuilder{def: DataSourceDefinition{
		Name:        name,
		Type:        dsType,
		Credentials: Credentials{ConnectionString: connectionString},
		Container:   Container{Name: container},
	}}
}

// HighWaterMark sets a high-water-mark change detection policy.
func (b *DataSourceBuilder) HighWaterMark(column string) *DataSourceBuilder {
	b.def.DataChangeDetectionPolicy = &ChangeDetectionPolicy{
		ODataType:               HighWaterMarkPolicyType,
		HighWaterMarkColumnName: column,
	}
	return b
}

// SoftDelete sets a soft-delete deletion detection policy.
func (b *DataSourceBuilder) SoftDelete(column, marker string) *DataSourceBuilder {
	b.def.DataDeletionDetectionPolicy = &DeletionDetectionPolicy{
		ODataType:             SoftDeletePolicyType,
		SoftDeleteColumnName:  column,
		SoftDeleteMarkerValue: marker,
	}
	return b
}

// Build validates and returns the data source definition.
func (b *DataSourceBuilder) Build() (*DataSourceDefinition, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return &b.def, nil
}

// IndexerBuilder is a fluent builder for indexer definitions.
type IndexerBuilder struct {
	def IndexerDefinition
}

// NewIndexer starts building an indexer definition.
func NewIndexer(name, dataSource, targetIndex string) *IndexerBuilder {
	return &IndexerBuilder{def: IndexerDefinition{
		Name:            name,
		DataSourceName:  dataSource,
		TargetIndexName: targetIndex,
	}}
}

// Every schedules the indexer to run at the given interval.
func (b *IndexerBuilder) Every(interval time.Duration) *IndexerBuilder {
	b.def.Schedule = &Schedule{Interval: Duration(interval)}
	return b
}

// Configure sets an indexing configuration parameter.
func (b *IndexerBuilder) Configure(key string, value any) *IndexerBuilder {
	if b.def.Parameters == nil {
		b.def.Parameters = &IndexingParameters{}
	}
	if b.def.Parameters.Configuration == nil {
		b.def.Parameters.Configuration = make(map[string]any)
	}
	b.def.Parameters.Configuration[key] = value
	return b
}

// Build validates and returns the indexer definition.
func (b *IndexerBuilder) Build() (*IndexerDefinition, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return &b.def, nil
}
