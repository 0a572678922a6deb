package models

// Operation is the kind of work a tracker performs.
type Operation string

const (
	OperationFile        Operation = "file"
	OperationDeletion    Operation = "deletion"
	OperationAppMetaData Operation = "appMetaData"
)

// IsContents reports whether the operation transfers data over the network.
// Deletions are applied locally once their group completes.
func (o Operation) IsContents() bool {
	return o == OperationFile || o == OperationAppMetaData
}

// TrackerStatus is the lifecycle state of a download or upload tracker.
type TrackerStatus string

const (
	TrackerStatusNotStarted  TrackerStatus = "notStarted"
	TrackerStatusDownloading TrackerStatus = "downloading"
	TrackerStatusDownloaded  TrackerStatus = "downloaded"
	TrackerStatusUploading   TrackerStatus = "uploading"
	TrackerStatusUploaded    TrackerStatus = "uploaded"
)

// GroupStatus is the lifecycle state of a content group.
type GroupStatus string

const (
	GroupStatusNotStarted  GroupStatus = "notStarted"
	GroupStatusDownloading GroupStatus = "downloading"
	GroupStatusCompleted   GroupStatus = "completed"
)
