// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - DraftBuilder: Fluent builder for creating journey drafts
//   - SeedSnapshot: Writes a saved draft into any store
//   - MockStore: testify mock of the draft store
//
// Usage:
//
//	d := testing.NewDraftBuilder().
//	    WithOrigin("Halifax").
//	    WithDates("2024-09-01", "2024-12-20").
//	    Build()
//
//	raw := testing.SeedSnapshot(t, kv, "ns_journey_draft_v1", d, testing.SavedAt)
package testing
