package sqlinline

import (
	"fmt"
	"strings"
)

const QSelectProfileByUser = `--sql 4f758e3e-d32f-4480-8055-362c73357382
select id, user_id, full_name, city, coalesce(services, '{}'::text[]), coalesce(events, '{}'::text[]), brand_style, post_frequency
from profiles
where user_id = $1::uuid
limit 1;
`

const qPatchProfileMarker = "--sql b1685b10-dcf1-4046-9351-3eb0fa234017"

// ProfileColumnTypes maps every patchable profiles column to its SQL type.
var ProfileColumnTypes = map[string]string{
	"full_name":      "text",
	"city":           "text",
	"services":       "text[]",
	"events":         "text[]",
	"brand_style":    "text",
	"post_frequency": "text",
}

// QPatchProfile renders a partial update touching only columns, in order.
// Parameter $1 is the user id; the column values follow as $2, $3, ...
func QPatchProfile(columns []string) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("profile patch has no columns")
	}
	sets := make([]string, 0, len(columns))
	for i, col := range columns {
		typ, ok := ProfileColumnTypes[col]
		if !ok {
			return "", fmt.Errorf("unknown profile column %q", col)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d::%s", col, i+2, typ))
	}
	return qPatchProfileMarker + "\nupdate profiles\nset " + strings.Join(sets, ",\n    ") +
		"\nwhere user_id = $1::uuid;\n", nil
}
