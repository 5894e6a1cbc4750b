package db

import "os"

// ItemsTableName returns the name of the items table. Empty when
// TABLE_NAME is not set; callers treat that as fatal at startup.
func ItemsTableName() string {
	return os.Getenv("TABLE_NAME")
}
