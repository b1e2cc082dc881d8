package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderIDPrefix = "ord"

// newOrderID builds a best-effort unique order token. The millisecond
// timestamp keeps ids sortable and debuggable; the random suffix guards
// against collisions within the same millisecond.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", orderIDPrefix, time.Now().UTC().UnixMilli(), suffix)
}
