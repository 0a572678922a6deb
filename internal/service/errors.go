package service

import "errors"

var (
	ErrBadMimeType             = errors.New("bad mime type")
	ErrAlreadyDownloadingAFile = errors.New("already downloading a file")
	ErrAlreadyUploadingAFile   = errors.New("already uploading a file")
	ErrInternalInconsistency   = errors.New("internal inconsistency")
	ErrGroupNotComplete        = errors.New("content group is not complete")
	ErrTrackerNotFound         = errors.New("tracker not found")
	ErrTrackerNotDownloaded    = errors.New("tracker is not downloaded")
	ErrNoSharingGroups         = errors.New("no sharing groups")
	ErrUnknownFile             = errors.New("file is not known locally")
	ErrFileDeleted             = errors.New("file is deleted")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTooManyRestarts     = errors.New("master version kept changing")
)
