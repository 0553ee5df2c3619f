package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const idTokenPrefix = "id"

// EncodeIDToken creates an opaque token pointing just past the row with the given ID.
// Pages are ordered by descending ID, so the next page holds IDs lower than this one.
func EncodeIDToken(id int64) string {
	return encodeFields(idTokenPrefix, strconv.FormatInt(id, 10))
}

// DecodeIDToken parses a token produced by EncodeIDToken.
func DecodeIDToken(token string) (int64, error) {
	parts, err := decodeFields(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != idTokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid pagination token format (id parse)")
	}
	return id, nil
}

func encodeFields(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

func decodeFields(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
