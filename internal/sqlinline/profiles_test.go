package sqlinline

import (
	"strings"
	"testing"
)

func TestQPatchProfileOnlyListsGivenColumns(t *testing.T) {
	q, err := QPatchProfile([]string{"city", "services"})
	if err != nil {
		t.Fatalf("QPatchProfile returned error: %v", err)
	}
	if !strings.HasPrefix(q, qPatchProfileMarker+"\n") {
		t.Fatalf("query must start with its marker: %q", q)
	}
	for _, want := range []string{"city = $2::text", "services = $3::text[]", "where user_id = $1::uuid"} {
		if !strings.Contains(q, want) {
			t.Fatalf("query %q missing %q", q, want)
		}
	}
	if strings.Contains(q, "full_name") {
		t.Fatalf("query touches an unrequested column: %q", q)
	}
}

func TestQPatchProfileRejectsUnknownOrEmpty(t *testing.T) {
	if _, err := QPatchProfile(nil); err == nil {
		t.Fatalf("expected error for empty column list")
	}
	if _, err := QPatchProfile([]string{"user_id"}); err == nil {
		t.Fatalf("expected error for non-patchable column")
	}
}
