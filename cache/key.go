package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// reportKeyVersion changes whenever the report layout or key parts change.
const reportKeyVersion = "v1"

// ReportKey derives the key of the report for spec under the given engine
// options. Only options that change the report take part; parallelism does not.
// spec must already be valid (finite weights), as for Analyze.
func ReportKey(spec core.Spec, mstMethod string, negativeCycleSource int) string {
	return hashKey("report:"+reportKeyVersion, spec, mstMethod, negativeCycleSource)
}

// hashKey renders prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)

	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
