package badger

import (
	"fmt"

	"github.com/poiesic/jobagent/core"
)

// Key prefixes for different data types
const (
	jobRecordPrefix = "jobrec"
	indexDocPrefix  = "idxdoc"
)

// makeJobRecordKey generates a key for a job record by ID.
func makeJobRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", jobRecordPrefix, id))
}

// makeIndexDocKey generates a key for an indexed document by ID.
func makeIndexDocKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", indexDocPrefix, id))
}
