package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageNone  = "none"
	StorageLocal = "local"
	StorageMinio = "minio"
)

const MimeCSV = "text/csv"
