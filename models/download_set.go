package models

// DownloadSet is the delta between the server file index and local state.
// Each file appears in at most one of the three lists.
type DownloadSet struct {
	DownloadFiles       []FileInfo
	DownloadDeletions   []FileInfo
	DownloadAppMetaData []FileInfo
}

// IsEmpty reports whether there is nothing to download or delete.
func (d DownloadSet) IsEmpty() bool {
	return len(d.DownloadFiles) == 0 && len(d.DownloadDeletions) == 0 && len(d.DownloadAppMetaData) == 0
}

// All returns the union of the three lists: files, deletions, appMetaData.
func (d DownloadSet) All() []FileInfo {
	all := make([]FileInfo, 0, len(d.DownloadFiles)+len(d.DownloadDeletions)+len(d.DownloadAppMetaData))
	all = append(all, d.DownloadFiles...)
	all = append(all, d.DownloadDeletions...)
	all = append(all, d.DownloadAppMetaData...)
	return all
}

// NumberContentDownloads counts file and appMetaData downloads.
func (d DownloadSet) NumberContentDownloads() int {
	return len(d.DownloadFiles) + len(d.DownloadAppMetaData)
}

// OperationFor returns the operation kind the set holds for file.
// The second result is false when the file is in none of the lists.
func (d DownloadSet) OperationFor(file FileInfo) (Operation, bool) {
	switch {
	case containsFile(d.DownloadFiles, file):
		return OperationFile, true
	case containsFile(d.DownloadDeletions, file):
		return OperationDeletion, true
	case containsFile(d.DownloadAppMetaData, file):
		return OperationAppMetaData, true
	default:
		return "", false
	}
}

func containsFile(files []FileInfo, file FileInfo) bool {
	for _, f := range files {
		if f.FileUUID == file.FileUUID {
			return true
		}
	}
	return false
}
