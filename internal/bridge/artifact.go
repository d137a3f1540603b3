package bridge

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// request is the artifact the bridge writes for the companion panel. The
// panel discovers it by the request- filename prefix and answers by writing
// response-<id>.json next to it.
type request struct {
	ID        string    `json:"id"`
	Payload   string    `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

func requestPath(dir, id string) string {
	return filepath.Join(dir, "request-"+id+".json")
}

func responsePath(dir, id string) string {
	return filepath.Join(dir, "response-"+id+".json")
}

func writeRequest(path, id, payload string) error {
	data, err := json.Marshal(request{ID: id, Payload: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// readResponse reads and parses a response artifact. The artifact's shape
// is owned by the panel; the bridge only requires valid JSON.
func readResponse(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return parsed, nil
}
