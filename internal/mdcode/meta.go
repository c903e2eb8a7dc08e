package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/shlex"
)

// Meta holds the attributes that follow the language in an info string,
// written either as a JSON object or as shell-quoted key=value words,
// optionally wrapped in braces:
//
//	```python file=main.py title="Hello world"
//	```go {"file": "main.go"}
type Meta map[string]interface{}

// Get returns the value for name as a string, or "" when it is absent.
func (m Meta) Get(name string) string {
	value, ok := m[name]
	if !ok {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// String renders the attributes as sorted key=value pairs.
func (m Meta) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m.Get(k)
	}

	return strings.Join(pairs, " ")
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}\s*$`)
)

func parseMeta(input []byte) (Meta, error) {
	meta := Meta{}

	if len(input) == 0 {
		return meta, nil
	}

	if reJSON.Match(input) {
		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, fmt.Errorf("info string: %w", err)
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, fmt.Errorf("info string: %w", err)
	}

	for _, word := range words {
		if key, value, ok := strings.Cut(word, "="); ok && key != "" {
			meta[key] = value
		}
	}

	return meta, nil
}
