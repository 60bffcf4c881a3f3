package searchapi

import "errors"

// OData discriminators for detection policies.
const (
	HighWaterMarkPolicyType = "#Microsoft.Azure.Search.HighWaterMarkChangeDetectionPolicy"
	SoftDeletePolicyType    = "#Microsoft.Azure.Search.SoftDeleteColumnDeletionDetectionPolicy"
)

// Data source type names.
const (
	DataSourceCosmosDB  = "cosmosdb"
	DataSourceAzureBlob = "azureblob"
)

// Credentials holds the connection string of a data source.
type Credentials struct {
	ConnectionString string `json:"connectionString"`
}

// Container names the collection or blob container to read.
type Container struct {
	Name  string `json:"name"`
	Query string `json:"query,omitempty"`
}

// ChangeDetectionPolicy is a high-water-mark change detection policy.
type ChangeDetectionPolicy struct {
	ODataType               string `json:"@odata.type"`
	HighWaterMarkColumnName string `json:"highWaterMarkColumnName"`
}

// DeletionDetectionPolicy is a soft-delete column deletion detection policy.
type DeletionDetectionPolicy struct {
	ODataType             string `json:"@odata.type"`
	SoftDeleteColumnName  string `json:"softDeleteColumnName"`
	SoftDeleteMarkerValue string `json:"softDeleteMarkerValue"`
}

// DataSourceDefinition is the body of PUT /datasources/{name}.
type DataSourceDefinition struct {
	Name                        string                   `json:"name"`
	Type                        string                   `json:"type"`
	Credentials                 Credentials              `json:"credentials"`
	Container                   Container                `json:"container"`
	DataChangeDetectionPolicy   *ChangeDetectionPolicy   `json:"dataChangeDetectionPolicy,omitempty"`
	DataDeletionDetectionPolicy *DeletionDetectionPolicy `json:"dataDeletionDetectionPolicy,omitempty"`
}

// Validate checks that the data source definition is well-formed.
func (ds *DataSourceDefinition) Validate() error {
	if ds.Name == "" {
		return errors.New("data source name is required")
	}
	if ds.Type == "" {
		return errors.New("data source type is required")
	}
	if ds.Credentials.ConnectionString == "" {
		return errors.New("connection string is required")
	}
	if ds.Container.Name == "" {
		return errors.New("container name is required")
	}
	return nil
}
