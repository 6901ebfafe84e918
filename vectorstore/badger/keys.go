package badger

import (
	"fmt"

	"github.com/poiesic/talentsearch/core"
)

// Key prefixes for different data types
const (
	applicantPrefix = "apprec"
)

// makeApplicantKey generates a key for an applicant record by ID.
func makeApplicantKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", applicantPrefix, id))
}
